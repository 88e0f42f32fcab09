package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses all configuration flags from args (typically
// os.Args[1:]).
//
// Flags:
//
//	-p listening port
//	-env application environment (development enables error detail)
//	-db-host database host
//	-db-port database port
//	-db-user database user
//	-db-password database password
//	-db-name database name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var port int
	var appEnv string
	var dbHost, dbUser, dbPassword, dbName string
	var dbPort int
	var jsonConfigPath string

	fs := flag.NewFlagSet("catalog-api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&port, "p", 0, "Listening port")
	fs.StringVar(&appEnv, "env", "", "Application environment")
	fs.StringVar(&dbHost, "db-host", "", "Database host")
	fs.IntVar(&dbPort, "db-port", 0, "Database port")
	fs.StringVar(&dbUser, "db-user", "", "Database user")
	fs.StringVar(&dbPassword, "db-password", "", "Database password")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port < 0 || dbPort < 0 {
		return nil, ErrInvalidPort
	}

	return &StructuredConfig{
		App: App{
			Env: appEnv,
		},
		Storage: Storage{
			DB: DB{
				Host:     dbHost,
				Port:     dbPort,
				User:     dbUser,
				Password: dbPassword,
				Name:     dbName,
			},
		},
		Server: Server{
			Port: port,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
