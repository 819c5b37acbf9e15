package main

import (
	"flag"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"uvalue/calculator"
	"uvalue/catalog"
	"uvalue/config"
	"uvalue/server"
)

func main() {
	confPath := flag.String("conf", config.DefaultPath, "path of the ini config file")
	flag.Parse()

	cfg, err := config.Load(*confPath)
	if err != nil {
		log.Fatal("load config: ", err)
	}
	if err := cfg.SetupLogger(); err != nil {
		log.Fatal(err)
	}

	cat, assemblies, err := loadReferenceData(cfg.Catalog)
	if err != nil {
		log.Fatal("load reference data: ", err)
	}

	gin.SetMode(gin.ReleaseMode)

	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
	}
	if cfg.Server.CheckOrigin {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	log.WithField("names", cat.Names()).Debug("catalog")
	log.WithFields(log.Fields{
		"materials":  cat.Len(),
		"assemblies": len(assemblies.Labels()),
		"workers":    cfg.Calculator.Workers,
		"strict":     cfg.Calculator.StrictMaterialData,
	}).Info("starting u-value calculator")

	s := server.NewServer(cfg.Server.Addr, upgrader, server.Options{
		Calculator: calculator.NewCalculator(cat, cfg.Calculator),
		Catalog:    cat,
		Assemblies: assemblies,
		Standards:  cfg.Standards,
	})
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

func loadReferenceData(c config.Catalog) (*catalog.Catalog, *catalog.Assemblies, error) {
	if c.File != "" {
		return catalog.LoadFile(c.File)
	}
	cat := catalog.Default()
	return cat, catalog.DefaultAssemblySet(cat), nil
}
