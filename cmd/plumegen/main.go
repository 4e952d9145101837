// Command plumegen builds a plume site into a static output directory.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/facebookgo/flagenv"

	"github.com/plumekit/plume/site"
)

func main() {
	var (
		fRoot = flag.String("root", ".", "Root of the site.")
		fOut  = flag.String("out", "public", "Output directory.")
	)
	flag.Parse()
	flagenv.Parse()

	rootFS := os.DirFS(*fRoot)

	cfg, err := site.LoadConfig(rootFS)
	if err != nil {
		log.Fatalf("Cannot load site config: %s", err)
	}

	s, err := site.New(rootFS, cfg)
	if err != nil {
		log.Fatalf("Cannot initialize site: %s", err)
	}

	if err := s.Build(*fOut); err != nil {
		log.Fatalf("Build failed: %s", err)
	}
}
