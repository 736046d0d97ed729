package main

import (
	"log"
	"os"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
	logsvc "github.com/trezcool/schoolhub/services/logger"
	notifysvc "github.com/trezcool/schoolhub/services/notify"
)

func main() {
	std := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	wd, err := os.Getwd()
	if err != nil {
		std.Fatal(err)
	}
	conf, err := core.NewConfig(wd)
	if err != nil {
		std.Fatal(err)
	}

	logger := logsvc.New(std, conf)

	// start CLI
	cli := commandLine{
		conf: conf,
		deps: resource.Deps{
			Validator: core.NewValidator(),
			Notifier:  notifysvc.NewConsoleService(os.Stdout, os.Stderr, conf.AppName),
			Logger:    logger,
		},
		money:  core.NewMoneyFormatter(conf),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	err = cli.run(os.Args)
	logsvc.Close(logger)
	if err != nil {
		if err != errHelp {
			std.Printf("error: %s\n", err)
		}
		os.Exit(1)
	}
}
