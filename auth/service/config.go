package service

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}

type Config struct {
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	RootPassword   string `toml:"root_password"`
	PasswordPepper string `toml:"password_pepper"`
	Rules          []Rule `toml:"rules"`
}
