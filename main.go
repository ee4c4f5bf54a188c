package main

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/carcruz97/portfolio/internal/config"
	"github.com/carcruz97/portfolio/internal/cv"
	"github.com/carcruz97/portfolio/internal/store"
)

const langCookie = "lang"

// visitorRetention is how long hashed visitor records are kept.
const visitorRetention = 12 * 30 * 24 * time.Hour

type server struct {
	cfg   config.Config
	store *store.Store
	admin *adminAuth
	salt  string // per-process salt for hashing client IPs
}

func newServer(cfg config.Config, st *store.Store) (*server, error) {
	admin, err := newAdminAuth(cfg)
	if err != nil {
		return nil, err
	}
	for _, l := range cv.Links() {
		if err := st.SyncLink(l.Slug, l.URL); err != nil {
			return nil, err
		}
	}
	return &server{
		cfg:   cfg,
		store: st,
		admin: admin,
		salt:  generateToken(),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer st.Close()

	s, err := newServer(cfg, st)
	if err != nil {
		log.Fatal("Failed to start: ", err)
	}

	// Clean up old visitor data for privacy compliance (run in background)
	go s.cleanupOldVisitors()

	log.Printf("Listening on :%s", cfg.Port)
	if err := s.router().Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/static", "./static")
	r.Use(s.visitorTrackingMiddleware())

	s.setupSiteRoutes(r)
	s.setupSnakeRoutes(r)
	s.setupAdminRoutes(r)
	return r
}

// language picks the page language: ?lang= (remembered in a cookie), then the
// cookie, then the configured default.
func (s *server) language(c *gin.Context) cv.Language {
	if q := c.Query("lang"); q != "" {
		if lang, ok := cv.ParseLanguage(q); ok {
			c.SetCookie(langCookie, string(lang), 3600*24*365, "/", "", false, false)
			return lang
		}
	}
	if v, err := c.Cookie(langCookie); err == nil {
		if lang, ok := cv.ParseLanguage(v); ok {
			return lang
		}
	}
	return s.cfg.DefaultLanguage
}

func (s *server) setupSiteRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		lang := s.language(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"lang":    lang,
			"profile": cv.ProfileFor(lang),
			"links":   cv.Links(),
			"t":       cv.Strings(lang),
			"flag":    flagFor(lang),
		})
	})

	// Flip the language cookie and go back home
	r.GET("/lang", func(c *gin.Context) {
		next := s.language(c).Toggle()
		c.SetCookie(langCookie, string(next), 3600*24*365, "/", "", false, false)
		c.Redirect(http.StatusFound, "/")
	})

	// Counted redirect to a social profile
	r.GET("/go/:slug", func(c *gin.Context) {
		url, err := s.store.RecordClick(c.Param("slug"))
		if err != nil {
			if !errors.Is(err, store.ErrLinkNotFound) {
				log.Printf("Error recording click for %s: %v", c.Param("slug"), err)
				c.String(http.StatusInternalServerError, "link unavailable")
				return
			}
			c.String(http.StatusNotFound, "unknown link")
			return
		}
		c.Redirect(http.StatusFound, url)
	})

	// CV download
	r.GET("/cv.pdf", func(c *gin.Context) {
		lang := s.language(c)
		var buf bytes.Buffer
		if err := cv.WritePDF(&buf, lang); err != nil {
			log.Printf("Error generating CV (%s): %v", lang, err)
			c.String(http.StatusInternalServerError, "CV unavailable")
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+cv.Filename(lang))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

// flagFor names the flag shown on the language button: the current language's.
func flagFor(lang cv.Language) string {
	if lang == cv.Spanish {
		return "Spain"
	}
	return "UK"
}
