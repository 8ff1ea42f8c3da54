package main

import (
	"github.com/alecthomas/kong"

	"github.com/been-going/PleaseCheckYourDays/internal/cli"
	"github.com/been-going/PleaseCheckYourDays/internal/config"
	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/errors"
	"github.com/been-going/PleaseCheckYourDays/internal/logger"
	"github.com/been-going/PleaseCheckYourDays/internal/service"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path (default: $CHECKDAYS_DB)." type:"path"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize checkdays storage."`
	Today    cli.TodayCmd    `cmd:"" help:"Show a day's routines and completion." default:"1"`
	Check    cli.CheckCmd    `cmd:"" help:"Check a routine or one-off off for a day."`
	Note     cli.NoteCmd     `cmd:"" help:"Attach a note or value to a routine's day."`
	Month    cli.MonthCmd    `cmd:"" help:"Show the monthly completion heat map."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show lifetime success rates per routine."`
	Overview cli.OverviewCmd `cmd:"" help:"Show a monthly activity overview."`
	Template struct {
		Add     cli.TemplateAddCmd     `cmd:"" help:"Add a routine template."`
		List    cli.TemplateListCmd    `cmd:"" help:"List routine templates."`
		Edit    cli.TemplateEditCmd    `cmd:"" help:"Edit a routine template."`
		Archive cli.TemplateArchiveCmd `cmd:"" help:"Archive a routine, keeping its history."`
		Restore cli.TemplateRestoreCmd `cmd:"" help:"Restore an archived routine."`
		Purge   cli.TemplatePurgeCmd   `cmd:"" help:"Permanently delete an archived routine."`
		Reorder cli.TemplateReorderCmd `cmd:"" help:"Reorder routines."`
	} `cmd:"" help:"Manage routine templates."`
	Oneoff struct {
		Add    cli.OneoffAddCmd    `cmd:"" help:"Add a one-off task to a day."`
		Delete cli.OneoffDeleteCmd `cmd:"" help:"Delete a task row."`
	} `cmd:"" help:"Manage one-off tasks."`
	Cost struct {
		Add    cli.CostAddCmd    `cmd:"" help:"Add a monthly fixed cost."`
		List   cli.CostListCmd   `cmd:"" help:"List fixed costs."`
		Delete cli.CostDeleteCmd `cmd:"" help:"Delete a fixed cost."`
	} `cmd:"" help:"Manage fixed costs."`
	User struct {
		Add cli.UserAddCmd `cmd:"" help:"Create an account."`
	} `cmd:"" help:"Manage accounts."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("checkdays"),
		kong.Description("Daily routine tracker with completion stats"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.DB != "" {
		cfg.DBPath = CLI.DB
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir}); err != nil {
		errors.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	store := storage.NewSQLiteStore(cfg.DBPath)
	defer store.Close()

	clock := dates.NewClock(loc)
	appCtx := &cli.Context{
		Store:   store,
		Tracker: service.NewTracker(store, loc, clock),
		Config:  cfg,
		Loc:     loc,
		Clock:   clock,
	}

	errors.Fatal(ctx.Run(appCtx))
}
