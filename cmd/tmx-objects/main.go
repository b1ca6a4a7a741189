package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	tile "github.com/voidshard/tile2d"
)

const desc = `Lists the objects placed on a tmx map.

Objects can be filtered by name or type, and optionally written to a sqlite database (replacing
whatever objects it held) for other tools to query.`

var cli struct {
	Input string `short:"i" help:"input .tmx map (required)"`

	Name string `short:"n" help:"only objects with this name"`
	Type string `short:"t" help:"only objects of this type"`

	DB string `help:"write the (filtered) objects to this sqlite database file"`
}

func main() {
	kong.Parse(&cli, kong.Name("tmx-objects"), kong.Description(desc))

	doc, err := tile.Open(cli.Input)
	if err != nil {
		panic(err)
	}

	objects := filter(tile.NewRegistry(doc.Objects))
	for _, o := range objects {
		fmt.Println(describe(o))
	}
	fmt.Printf("%d of %d objects\n", len(objects), len(doc.Objects))

	if cli.DB == "" {
		return
	}

	db, err := tile.OpenObjectDB(cli.DB)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	err = db.Put(objects)
	if err != nil {
		panic(err)
	}
	fmt.Printf("wrote %d objects to %s\n", len(objects), db.Filename())
}

// filter applies --name & --type
func filter(reg *tile.Registry) []tile.Object {
	objects := reg.All()
	if cli.Name != "" {
		objects = reg.ByName(cli.Name)
	}
	if cli.Type == "" {
		return objects
	}

	found := []tile.Object{}
	for _, o := range objects {
		if o.Type == cli.Type {
			found = append(found, o)
		}
	}
	return found
}

func describe(o tile.Object) string {
	props := make([]string, 0, len(o.Properties))
	for _, p := range o.Properties {
		props = append(props, fmt.Sprintf("%s(%s)=%s", p.Name, p.Type, p.Value))
	}
	return fmt.Sprintf(
		"#%d %q type=%q at (%g,%g) size %gx%g [%s]",
		o.ID, o.Name, o.Type,
		o.Bounds.X, o.Bounds.Y, o.Bounds.Width, o.Bounds.Height,
		strings.Join(props, " "),
	)
}
