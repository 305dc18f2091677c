package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `env:"VINLOGG_DEBUG" help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                       help:"Run the API server"`
	Migrate MigrateCmd `cmd:"" help:"Create or update the database schema"`
}
