package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"uvalue/calculator"
	"uvalue/model"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Server     Server
	Log        Log
	Calculator calculator.Config
	Catalog    Catalog
	Standards  []calculator.Standard
}

type Server struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     bool // 是否允许跨域 websocket
}

type Log struct {
	Level  string
	Format string // text | json
}

type Catalog struct {
	File string // 为空时使用内置参考数据
}

// Load 读取配置文件，文件不存在时使用默认值
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		log.WithField("path", path).Warn("config file not found, using defaults")
		file = ini.Empty()
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) *Config {
	server := file.Section("server")
	logSec := file.Section("log")
	calc := file.Section("calculator")
	rating := file.Section("rating")

	return &Config{
		Server: Server{
			Addr:            server.Key("Addr").MustString(":9000"),
			ReadBufferSize:  server.Key("ReadBufferSize").MustInt(1024),
			WriteBufferSize: server.Key("WriteBufferSize").MustInt(1024),
			CheckOrigin:     server.Key("CheckOrigin").MustBool(true),
		},
		Log: Log{
			Level:  logSec.Key("Level").MustString("info"),
			Format: logSec.Key("Format").In("text", []string{"text", "json"}),
		},
		Calculator: calculator.Config{
			Workers:            calc.Key("Workers").MustInt(4),
			MaxCompare:         calc.Key("MaxCompare").MustInt(model.DefaultMaxCompare),
			StrictMaterialData: calc.Key("StrictMaterialData").MustBool(false),
		},
		Catalog: Catalog{
			File: file.Section("catalog").Key("File").String(),
		},
		Standards: []calculator.Standard{
			{Name: "Passivhaus", MaxU: rating.Key("Passivhaus").MustFloat64(model.PassivhausMaxU)},
			{Name: "MINERGIE", MaxU: rating.Key("Minergie").MustFloat64(model.MinergieMaxU)},
			{Name: "CTE", MaxU: rating.Key("CTE").MustFloat64(model.CTEMaxU)},
		},
	}
}

// SetupLogger 设置 logrus 的日志级别和格式
func (c *Config) SetupLogger() error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	if c.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
