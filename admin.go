// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carcruz97/portfolio/internal/config"
	"github.com/carcruz97/portfolio/internal/store"
)

const (
	adminCookie  = "admin_token"
	adminIssuer  = "carcruz97-portfolio"
	adminSession = 24 * time.Hour
)

var errBadCredentials = errors.New("invalid credentials")

type adminAuth struct {
	username     string
	passwordHash []byte
	jwtKey       []byte
}

func newAdminAuth(cfg config.Config) (*adminAuth, error) {
	a := &adminAuth{username: cfg.AdminUsername}

	switch {
	case cfg.AdminPasswordHash != "":
		a.passwordHash = []byte(cfg.AdminPasswordHash)
	default:
		password := cfg.AdminPassword
		if password == "" {
			password = "admin123"
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD_HASH environment variable.")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		a.passwordHash = hash
	}

	if cfg.JWTSecret != "" {
		a.jwtKey = []byte(cfg.JWTSecret)
	} else {
		// Sessions do not survive a restart without a configured secret.
		a.jwtKey = []byte(generateToken())
	}

	log.Printf("Admin access available at: /admin/login")
	return a, nil
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

// login checks the credentials and returns a signed session token.
func (a *adminAuth) login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", errBadCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    adminIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(adminSession)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

func (a *adminAuth) verify(token string) error {
	if token == "" {
		return errors.New("missing token")
	}
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return a.jwtKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminIssuer),
		jwt.WithSubject(a.username),
	)
	return err
}

// Hash IP address for privacy compliance (consistent per IP within a process)
func (s *server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware to check admin authentication
func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(adminCookie)
		if err := s.admin.verify(token); err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

var untrackedPrefixes = []string{"/static/", "/admin/", "/favicon", "/privacy", "/healthz", "/snake/ws"}

// Privacy-conscious visitor tracking middleware
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed := s.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		go func() {
			if err := s.store.RecordVisit(hashed, userAgent, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func (s *server) cleanupOldVisitors() {
	if _, err := s.store.CleanupVisitors(time.Now().Add(-visitorRetention)); err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
	}
}

// Setup all admin routes
func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		token, err := s.admin.login(c.PostForm("username"), c.PostForm("password"))
		if err != nil {
			log.Printf("Failed admin login attempt from %s", s.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, token, int(adminSession.Seconds()), "/admin", "", false, true)
		log.Printf("Admin login successful from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/links", func(c *gin.Context) {
		links, err := s.store.Links()
		if err != nil {
			log.Printf("Error loading links: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load links",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-links.html", gin.H{
			"links": links,
		})
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	adminGroup.POST("/links/:slug/reset", func(c *gin.Context) {
		slug := c.Param("slug")
		err := s.store.ResetClicks(slug)
		switch {
		case errors.Is(err, store.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		case err != nil:
			log.Printf("Error resetting clicks for %s: %v", slug, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset clicks"})
			return
		}
		log.Printf("Clicks for %s reset by admin from %s", slug, s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Clicks reset"})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go s.cleanupOldVisitors()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
