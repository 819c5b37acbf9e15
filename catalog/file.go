package catalog

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"uvalue/model"
)

// 参考数据文件格式
type referenceData struct {
	Materials  []model.MaterialProperties `yaml:"materials"`
	Assemblies []model.Assembly           `yaml:"assemblies"`
}

// LoadFile 从 yaml 文件读取材料库和预设构造
func LoadFile(path string) (*Catalog, *Assemblies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, *Assemblies, error) {
	var ref referenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, nil, fmt.Errorf("decode reference data: %w", err)
	}
	cat, err := New(ref.Materials)
	if err != nil {
		return nil, nil, err
	}
	asm, err := NewAssemblies(cat, ref.Assemblies)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{
		"materials":  cat.Len(),
		"assemblies": len(ref.Assemblies),
	}).Info("reference data loaded")
	return cat, asm, nil
}
