package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "github.com/TheoIlgazCelik/uwh-team-maker"
	authservice "github.com/TheoIlgazCelik/uwh-team-maker/auth/service"
	"github.com/TheoIlgazCelik/uwh-team-maker/auth/users"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/config"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
)

type Server struct {
	auth   *authservice.Service
	roster *service.RosterService
	events *service.EventService
	teams  *service.TeamService
	rating *service.RatingService
	app    *fiber.App
	cfg    config.Server
}

func New(cfg config.Server, authService *authservice.Service, roster *service.RosterService, events *service.EventService, teams *service.TeamService, rating *service.RatingService) (*Server, error) {
	server := Server{
		auth:   authService,
		roster: roster,
		events: events,
		teams:  teams,
		rating: rating,
		cfg:    cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handleError,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			token = c.Get("X-Auth-Token")
		}
		user, err := authService.Auth(c.Context(), token, c.Method(), c.OriginalURL())
		if err != nil {
			return err
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.handleGetSignIn)
	app.Post(webpath.Signin, server.handlePostSignIn)
	app.Get(webpath.Signup, server.handleGetSignup)
	app.Post(webpath.Signup, server.handlePostSignup)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleMain)
	app.Get(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiUsers, server.handleListUsers)
	app.Get(webpath.ApiUser, server.handleGetUser)
	app.Put(webpath.ApiUserSkill, server.handleSetSkill)
	app.Delete(webpath.ApiUser, server.handleDeleteUser)
	app.Get(webpath.ApiEvents, server.handleListEvents)
	app.Post(webpath.ApiEvents, server.handleCreateEvent)
	app.Get(webpath.ApiEvent, server.handleGetEvent)
	app.Put(webpath.ApiEvent, server.handleUpdateEvent)
	app.Post(webpath.ApiRsvp, server.handleRsvp)
	app.Get(webpath.ApiAttendees, server.handleAttendees)
	app.Post(webpath.ApiTeams, server.handleGenerateTeams)
	app.Get(webpath.ApiTeams, server.handleGetTeams)
	app.Post(webpath.ApiTeamSkill, server.handleAdjustSkill)
	app.Post(webpath.ApiMatches, server.handleRecordMatches)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

// Test routes a request through the app without a listener.
func (s *Server) Test(req *http.Request) (*http.Response, error) {
	return s.app.Test(req)
}

const userKey = "user"

func currentUser(ctx *fiber.Ctx) users.User {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return user
}

func handleError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound):
		ctx.Status(fiber.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoAttendees):
		ctx.Status(fiber.StatusBadRequest)
	case errors.Is(err, domain.ErrConflict):
		ctx.Status(fiber.StatusConflict)
	case errors.Is(err, authservice.ErrNotAuthorized):
		ctx.Status(fiber.StatusUnauthorized)
	case errors.Is(err, authservice.ErrForbidden):
		ctx.Status(fiber.StatusForbidden)
	case errors.As(err, &fiberErr):
		ctx.Status(fiberErr.Code)
	default:
		ctx.Status(fiber.StatusInternalServerError)
	}
	return ctx.JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	ratings, err := s.roster.Ratings(ctx.Context())
	if err != nil {
		return err
	}
	events, err := s.events.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("index", newData("Team Maker").
		WithUser(user).
		With("Players", ratings).
		With("Events", events), "layouts/main")
}

func (s *Server) handleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign in"), "layouts/main")
}

func (s *Server) handlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Sign in").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.name, req.password)
	if err != nil {
		return ctx.Render("signin", newData("Sign in").WithErrors(err), "layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Sign up"), "layouts/main")
}

func (s *Server) handlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Sign up").WithErrors(err), "layouts/main")
	}
	_, err = s.auth.SignUp(ctx.Context(), req.name, req.email, req.password)
	if err != nil {
		return ctx.Render("signup", newData("Sign up").WithErrors(err), "layouts/main")
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.ApiHome)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}
