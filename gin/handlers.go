package gin

import (
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/definer"
	"github.com/gin-gonic/gin"
)

// ErrorStatusCode maps application error codes to HTTP status codes.
func ErrorStatusCode(code string) int {
	switch code {
	case definer.ENOTFOUND:
		return http.StatusNotFound
	case definer.EINVALID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleWord serves the serialized word, or an empty object when there is
// no data. Responses carry an ETag derived from the body.
func (s *Server) handleWord(c *gin.Context) {
	word := c.Param("word")

	w, err := s.words.Lookup(c.Request.Context(), word)
	if err != nil {
		s.error(c, err)
		return
	}

	body, err := definer.MarshalWord(w)
	if err != nil {
		s.error(c, err)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64String(body), 16) + `"`
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(body))
}

func (s *Server) handleLookups(c *gin.Context) {
	word := c.Param("word")

	n, err := s.words.Lookups(c.Request.Context(), word)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word, "lookups": n})
}

// error writes an empty object with the mapped status. Internal errors are
// logged; their details never reach the client.
func (s *Server) error(c *gin.Context, err error) {
	code := definer.ErrorCode(err)
	if code == definer.EINTERNAL {
		s.logger.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
			"err", err,
		)
	}
	c.JSON(ErrorStatusCode(code), gin.H{})
}
