package main

import (
	"os"
	"time"

	"github.com/curtisnewbie/dating/config"
	"github.com/curtisnewbie/dating/dating"
	"github.com/curtisnewbie/dating/middleware/sqlite"
	"github.com/curtisnewbie/dating/util/atom"
	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/curtisnewbie/dating/zone"
)

type Person struct {
	ID         uint
	Name       string
	BornOn     *atom.Date
	LastSeenAt *time.Time
	StartTime  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var people = dating.MustNewRecord[Person]()

func init() {
	people.MustLocaleDate([]string{"born_on"})
	people.MustLocaleDate([]string{"born_on"}, dating.WithFormat("long"))
	people.MustLocaleDateTime([]string{"last_seen_at"})
	people.MustLocaleTime([]string{"start_time"}, dating.WithFormat("short"))
}

func main() {
	c, err := config.Bootstrap(os.Args)
	if err != nil {
		panic(err)
	}
	if !c.HasProp(sqlite.PropSqliteFile) {
		c.SetProp(sqlite.PropSqliteFile, "demo.db")
	}
	if err := run(c); err != nil {
		dlog.Errorf("Demo failed, %v", errs.ErrorStackTrace(err))
		os.Exit(1)
	}
}

func run(c *config.AppConfig) error {
	db, err := sqlite.Open(c)
	if err != nil {
		return err
	}
	defer sqlite.Close(db)

	if err := sqlite.Migrate(db, &Person{}); err != nil {
		return err
	}

	// the text a user would type into a form
	p := Person{Name: "Jane"}
	in := people.Of(&p)
	if err := in.Set("born_on_as_text", "12/30/1990"); err != nil {
		return err
	}
	if err := in.Set("last_seen_at_as_text", "12/30/2012 05:30pm"); err != nil {
		return err
	}
	if err := in.Set("start_time_as_short", "9:00am"); err != nil {
		return err
	}
	if err := db.Create(&p).Error; err != nil {
		return err
	}
	dlog.Infof("Saved person %v in zone %v, last_seen_at (UTC): %v", p.ID, zone.Current(), p.LastSeenAt)

	var loaded Person
	if err := db.First(&loaded, p.ID).Error; err != nil {
		return err
	}
	for _, b := range people.Bindings() {
		text, err := people.Get(&loaded, b.Getter)
		if err != nil {
			return err
		}
		dlog.Infof("%-24s %v", b.Getter, text)
	}
	return nil
}
