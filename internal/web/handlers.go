package web

import (
	"strconv"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ratings, err := s.roster.Ratings(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(convertUserResponses(ratings))
}

func (s *Server) handleListUsers(ctx *fiber.Ctx) error {
	users, err := s.roster.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(convertUserResponses(users))
}

func (s *Server) handleGetUser(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	user, err := s.roster.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertUserResponse(user))
}

func (s *Server) handleSetSkill(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req setSkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	user, err := s.roster.SetSkill(ctx.Context(), id, req.Skill)
	if err != nil {
		return err
	}
	return ctx.JSON(convertUserResponse(user))
}

func (s *Server) handleDeleteUser(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	err = s.roster.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleListEvents(ctx *fiber.Ctx) error {
	events, err := s.events.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(convertEvents(events))
}

func (s *Server) handleCreateEvent(ctx *fiber.Ctx) error {
	var req createEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	event := req.convertToDomainEvent()
	event.CreatedBy = currentUser(ctx).ID
	created, err := s.events.Create(ctx.Context(), event)
	if err != nil {
		return err
	}
	ctx.Status(fiber.StatusCreated)
	return ctx.JSON(convertEvent(created))
}

func (s *Server) handleGetEvent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	event, err := s.events.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertEvent(event))
}

func (s *Server) handleUpdateEvent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req createEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	event := req.convertToDomainEvent()
	event.ID = id
	err = s.events.Update(ctx.Context(), event)
	if err != nil {
		return err
	}
	return ctx.JSON(convertEvent(event))
}

func (s *Server) handleRsvp(ctx *fiber.Ctx) error {
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req rsvpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	user := currentUser(ctx)
	err = s.events.Rsvp(ctx.Context(), eventID, user.ID, domain.RsvpStatus(req.Status))
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleAttendees(ctx *fiber.Ctx) error {
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	attendees, err := s.events.ResolveAttendees(ctx.Context(), eventID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertMembers(attendees, currentUser(ctx).IsAdmin()))
}

func (s *Server) handleGenerateTeams(ctx *fiber.Ctx) error {
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req generateTeamsRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.ErrBadRequest
		}
	}
	teams, err := s.teams.Generate(ctx.Context(), eventID, req.Method, req.TeamSize)
	if err != nil {
		return err
	}
	return ctx.JSON(convertTeams(teams, currentUser(ctx).IsAdmin()))
}

func (s *Server) handleGetTeams(ctx *fiber.Ctx) error {
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	teams, err := s.teams.Get(ctx.Context(), eventID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertTeams(teams, currentUser(ctx).IsAdmin()))
}

func (s *Server) handleAdjustSkill(ctx *fiber.Ctx) error {
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req adjustSkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	updated, err := s.teams.AdjustSkill(ctx.Context(), eventID, index, req.Delta)
	if err != nil {
		return err
	}
	return ctx.JSON(convertUserResponses(updated))
}

func (s *Server) handleRecordMatches(ctx *fiber.Ctx) error {
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	var req recordMatchesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	err = s.rating.RecordMatches(ctx.Context(), eventID, req.convertToResults(), req.KFactor)
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
