package server

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skillsenselab/restkit/logger"
)

var bridgeMu sync.Mutex

// RedirectFrameworkLogs replaces Gin's global default writers so that all
// framework output (debug prints, recovery traces, route listings) flows
// through the structured logger instead of raw stderr.
//
// Calling it again replaces the previous bridge, so it is safe to invoke on
// every bootstrap. Passing nil uses the global logger.
func RedirectFrameworkLogs(log *logger.Logger) {
	bridgeMu.Lock()
	defer bridgeMu.Unlock()

	if log == nil {
		log = logger.GetGlobalLogger()
	}
	fw := log.WithComponent("gin")

	gin.DefaultWriter = fw.Writer(zerolog.DebugLevel)
	gin.DefaultErrorWriter = fw.Writer(zerolog.ErrorLevel)
}
