package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanaburkart/portfolio/internal/typewriter"
)

const maxFrameCycles = 10

// handleIndex renders the page with the request's theme.
func (s *Server) handleIndex(c *gin.Context) {
	pref := s.themeController(c).Initialize()

	firstPhrase := ""
	if len(s.profile.Phrases) > 0 {
		firstPhrase = s.profile.Phrases[0]
	}

	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Profile":     s.profile,
		"Links":       s.profile.Contact.Links(),
		"Dark":        pref.Dark(),
		"Theme":       pref.Effective.String(),
		"FirstPhrase": firstPhrase,
	})
}

// handleThemeToggle flips the theme, stores it in the cookie and sends the
// browser back to the page.
func (s *Server) handleThemeToggle(c *gin.Context) {
	pref := s.themeController(c).Toggle()
	s.logger.Debug("Toggled theme", "effective", pref.Effective.String())

	c.Redirect(http.StatusSeeOther, "/")
}

// handleTheme reports how the request's theme resolves.
func (s *Server) handleTheme(c *gin.Context) {
	pref := s.themeController(c).Initialize()
	c.JSON(http.StatusOK, newThemeResponse(pref))
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.profile)
}

// handleFrames returns the typewriter animation for a number of full
// cycles over the phrases.
func (s *Server) handleFrames(c *gin.Context) {
	cycles := 1
	if raw := c.Query("cycles"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cycles must be a positive integer"})
			return
		}
		cycles = min(n, maxFrameCycles)
	}

	speeds := typewriter.DefaultSpeeds()
	frames, err := typewriter.Frames(s.profile.Phrases, speeds, cycles)
	if errors.Is(err, typewriter.ErrNoPhrases) {
		frames = []typewriter.Frame{}
	} else if err != nil {
		s.logger.Error("Failed to build typewriter frames", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cycles":         cycles,
		"phrases":        s.profile.Phrases,
		"first_delay_ms": speeds.Typing.Milliseconds(),
		"frames":         frames,
	})
}
