package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golife/internal/app"
	"golife/internal/render"
	"golife/internal/store"
	"golife/pkg/codec"
	"golife/pkg/life"
)

type options struct {
	steps  int
	print  bool
	pgmIn  string
	pgmOut string
	load   string
	save   string
	list   bool
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.steps, "steps", 100, "generations to simulate")
	fs.BoolVar(&o.print, "print", false, "print the final board")
	fs.StringVar(&o.pgmIn, "pgm-in", "", "start from a PGM image")
	fs.StringVar(&o.pgmOut, "pgm-out", "", "write the final board as a PGM image")
	fs.StringVar(&o.load, "load", "", "start from a saved game")
	fs.StringVar(&o.save, "save", "", "save the final game under this name")
	fs.BoolVar(&o.list, "list", false, "list saved games and exit")
}

func main() {
	var opts options
	cfg, err := app.ParseArgs("life-run", os.Args[1:], opts.bind)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("config: %v", err)
	}
	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *app.Config, opts options, out io.Writer) error {
	var st store.Store
	if opts.list || opts.load != "" || opts.save != "" {
		var err error
		if st, err = cfg.OpenStore(); err != nil {
			return fmt.Errorf("store: %w", err)
		}
	}
	if opts.list {
		games, err := st.List(ctx)
		if err != nil {
			return err
		}
		for _, g := range games {
			fmt.Fprintf(out, "%s\t%d\n", g.Name, g.Age)
		}
		return nil
	}

	game, err := initialGame(ctx, cfg, opts, st)
	if err != nil {
		return err
	}

	reported := game.Periodic()
	for i := 0; i < opts.steps && !game.Finished(); i++ {
		game.Step()
		if game.Periodic() && !reported {
			reported = true
			log.Printf("generation %d: %s", game.Age(), game.PeriodicInfo())
		}
	}
	status := "running"
	if game.Finished() {
		status = game.FinishReason()
	}
	fmt.Fprintf(out, "generation %d, %d alive, %s\n", game.Age(), game.Current().Alive(), status)

	if opts.print {
		if err := codec.WriteStream(out, game.Current()); err != nil {
			return err
		}
	}
	if opts.pgmOut != "" {
		if err := writePGM(opts.pgmOut, game); err != nil {
			return err
		}
	}
	if opts.save != "" {
		if err := st.Save(ctx, life.NewRecord(opts.save, game)); err != nil {
			return fmt.Errorf("save %q: %w", opts.save, err)
		}
		log.Printf("saved %q at generation %d", opts.save, game.Age())
	}
	return nil
}

func initialGame(ctx context.Context, cfg *app.Config, opts options, st store.Store) (*life.Game, error) {
	switch {
	case opts.load != "":
		rec, err := st.Load(ctx, opts.load)
		if err != nil {
			return nil, err
		}
		return life.FromRecord(rec, cfg.Size())
	case opts.pgmIn != "":
		f, err := os.Open(opts.pgmIn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := render.ReadPGM(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", opts.pgmIn, err)
		}
		return life.FromGrid(g), nil
	default:
		return cfg.NewGame()
	}
}

func writePGM(path string, game *life.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePGM(f, game.Current()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
