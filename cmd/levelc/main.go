// Command levelc compiles YAML level sources into TMAP tile maps.
//
//	levelc -in levels/level1.yaml -out assets/map.bin
//	levelc -in levels/level1.yaml -out assets/map.bin -watch
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/archer/assets"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/levels"
	"github.com/milk9111/archer/tilemap"
)

func main() {
	in := flag.String("in", "levels/level1.yaml", "level source to compile")
	out := flag.String("out", "assets/map.bin", "TMAP output path")
	watch := flag.Bool("watch", false, "recompile whenever the source changes")
	oob := flag.String("out_of_bounds", "", "out-of-bounds policy the level is played with (empty|solid); solid rejects objects placed beyond the map edge")
	flag.Parse()

	policy, err := tilemap.ParseOutOfBounds(*oob)
	if err != nil {
		log.Fatalf("levelc: %v", err)
	}
	sheet, err := assets.Sheet()
	if err != nil {
		log.Fatalf("levelc: %v", err)
	}

	if err := build(*in, *out, sheet, policy); err != nil {
		if !*watch {
			log.Fatalf("levelc: %v", err)
		}
		log.Printf("levelc: %v", err)
	}
	if !*watch {
		return
	}

	w, err := levels.NewWatcher(*in)
	if err != nil {
		log.Fatalf("levelc: %v", err)
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	log.Printf("levelc: watching %s", *in)
	for {
		select {
		case _, ok := <-w.Changed:
			if !ok {
				return
			}
			if err := build(*in, *out, sheet, policy); err != nil {
				log.Printf("levelc: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("levelc: watch: %v", err)
		case <-interrupt:
			return
		}
	}
}

// build compiles in and writes the encoded map to out.
func build(in, out string, sheet *gfx.Sheet, policy tilemap.OutOfBounds) error {
	src, err := levels.LoadSource(in)
	if err != nil {
		return err
	}
	m, err := levels.Compile(src, sheet, tilemap.WithOutOfBounds(policy))
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	log.Printf("levelc: wrote %s (%dx%d, %d objects, %d bytes)", out, m.Width, m.Height, len(m.Objects), len(data))
	return nil
}
