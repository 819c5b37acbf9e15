package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"uvalue/calculator"
	"uvalue/catalog"
)

type Server struct {
	addr       string
	upgrader   websocket.Upgrader
	calc       *calculator.Calculator
	catalog    *catalog.Catalog
	assemblies *catalog.Assemblies
	standards  []calculator.Standard
	metrics    *metrics
	engine     *gin.Engine
}

// Options 服务依赖的参考数据和计算器
type Options struct {
	Calculator *calculator.Calculator
	Catalog    *catalog.Catalog
	Assemblies *catalog.Assemblies
	Standards  []calculator.Standard
}

func NewServer(addr string, upgrader websocket.Upgrader, opts Options) *Server {
	if opts.Standards == nil {
		opts.Standards = calculator.DefaultStandards()
	}
	s := &Server{
		addr:       addr,
		upgrader:   upgrader,
		calc:       opts.Calculator,
		catalog:    opts.Catalog,
		assemblies: opts.Assemblies,
		standards:  opts.Standards,
		metrics:    newMetrics(),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(),
		s.metrics.instrument(),
	)

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.handler()))
	r.GET("/ws", func(c *gin.Context) {
		s.serveWs(c.Writer, c.Request)
	})

	api := r.Group("/api/v1")
	{
		api.GET("/materials", s.listMaterials)
		api.GET("/assemblies", s.listAssemblies)
		api.POST("/compute", s.handleCompute)
		api.POST("/compute/csv", s.handleComputeCSV)
		api.POST("/compare", s.handleCompare)
		api.POST("/compare/csv", s.handleCompareCSV)
	}
	return r
}

// Handler 返回 http.Handler，便于测试
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Serve() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	log.WithField("addr", s.addr).Info("server listening")
	return srv.ListenAndServe()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"request_id": c.GetString(requestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("http request")
	}
}
