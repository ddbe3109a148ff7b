package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Toda operação roda com prazo. Estourou, a resposta é timeout e quem
// decide re-tentar é o cliente — nunca re-tentamos por conta própria.
func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
