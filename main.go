// Command plume serves a collection-driven blog site over HTTP. Pages are
// rendered from markup on demand and cached with groupcache via cachefs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/plumekit/plume/site"
	"github.com/plumekit/plume/sitefs"
	"github.com/plumekit/plume/web"
)

func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the site.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Page cache size in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "Page cache expiration.")
	)
	flag.Parse()
	flagenv.Parse()

	// Setup groupcache (no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	rootFS := os.DirFS(*fRoot)

	cfg, err := site.LoadConfig(rootFS)
	if err != nil {
		log.Printf("Cannot load site config: %s", err)
		os.Exit(1)
	}

	s, err := site.New(rootFS, cfg)
	if err != nil {
		log.Printf("Cannot initialize site: %s", err)
		os.Exit(2)
	}
	log.Printf("Serving collection %q from %q", cfg.Collection, *fRoot)

	// Fail fast on broken content rather than at first request
	entries, err := s.Entries()
	if err != nil {
		log.Printf("Cannot load collection: %s", err)
		os.Exit(3)
	}
	log.Printf("Loaded %d published entries", len(entries))

	cached := cachefs.New(sitefs.New(s, rootFS), &cachefs.Config{
		GroupName:   "plume",
		SizeInBytes: *fCacheSize,
		Duration:    *fCacheDuration,
	})

	handler := web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.ErrorHandler(
					http.FileServer(http.FS(cached)),
					cached,
				),
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)

	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handler,
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Graceful shutdown on interrupt or sigterm
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		signal.Notify(sigint, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Print("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
