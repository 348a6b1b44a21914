package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/juho05/diacritics/config"
	"github.com/juho05/diacritics/repos/postgres"
	"github.com/juho05/log"
)

const usage = "<command>\n\nCOMMANDS:\n  sets\n  rules"

func run(args []string, conf config.Config) error {
	if len(args) < 2 {
		fmt.Println("USAGE:", args[0], usage)
		os.Exit(1)
	}
	if !conf.DBEnabled() {
		return errors.New("no database configured: set DB_HOST")
	}
	db, err := postgres.NewDB(conf.DSN(), conf)
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[1] {
	case "sets":
		err = sets(args, db.MappingSet(), conf)
	case "rules":
		err = rules(args, db.MappingSet())
	default:
		fmt.Println("Unknown command")
		fmt.Println("USAGE:", args[0], usage)
		os.Exit(1)
	}

	return err
}

func main() {
	_ = godotenv.Load()

	conf, errs := config.Load(os.Environ())
	if len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("ERROR: %s", e)
		}
		log.Fatalf("ERROR: failed to load config")
	}

	log.SetSeverity(conf.LogLevel)
	log.SetOutput(conf.LogFile)

	err := run(os.Args, conf)
	if err != nil {
		log.Fatalf("%s", err)
	}
}
