package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

func (a *Agent) generateRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.GET("/take/:category/:itemType", func(c *gin.Context) {
		count := 1
		if raw := c.Query("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > queue.MaxCount {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("count must be an integer between 1 and %d", queue.MaxCount)})
				return
			}
			count = parsed
		}

		item, ok, err := a.manager.TakeWithTheme(
			c.Request.Context(),
			queue.Category(c.Param("category")),
			queue.ItemType(c.Param("itemType")),
			count,
			c.Query("theme"),
		)
		if errors.Is(err, queue.ErrInvalidCategory) || errors.Is(err, queue.ErrInvalidItemType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no item available"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"item": item})
	})

	router.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.manager.Snapshot())
	})

	router.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.manager.Stats())
	})

	router.POST("/state/save", func(c *gin.Context) {
		if err := a.Save(c.Request.Context()); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		c.Status(http.StatusNoContent)
	})

	return router
}

func (a *Agent) GetRouter() *gin.Engine {
	return a.apiRouter
}

// StartServer blocks until ctx is done. An empty listen address disables the
// server.
func (a *Agent) StartServer(ctx context.Context) error {
	slog.Info("starting server", "port", a.apiIpPort)

	if a.apiIpPort == "" {
		slog.Info("api ip port is empty, skipping server")
		return nil
	}

	server := &http.Server{
		Addr:    a.apiIpPort,
		Handler: a.apiRouter,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	return nil
}
