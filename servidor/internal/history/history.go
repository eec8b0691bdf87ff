// Package history registra no SQLite cada estrutura gerada pelo servidor.
package history

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"VoxelVision/shared/voxel"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound indica um registro inexistente.
var ErrNotFound = errors.New("history: registro não encontrado")

// GenerationRecord é uma linha do histórico de gerações.
type GenerationRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Prompt        string    `gorm:"index" json:"prompt"`
	VoxelCount    int       `json:"voxel_count"`
	Test          bool      `json:"test"`
	SchematicPath string    `json:"schematic_path,omitempty"`
	DurationMs    int64     `json:"duration_ms"`
	Data          []byte    `json:"-"` // Estrutura serializada (voxel.MarshalStructure)
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

// Store é o histórico persistido.
type Store struct {
	DB *gorm.DB
}

// Open abre (ou cria) o banco SQLite em path e roda as migrações.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&GenerationRecord{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	log.Printf("[History] Banco de dados SQLite aberto: %s", path)
	return &Store{DB: db}, nil
}

// Record salva uma geração e retorna o registro com ID preenchido.
func (s *Store) Record(st voxel.Structure, test bool, schematicPath string, took time.Duration) (*GenerationRecord, error) {
	rec := &GenerationRecord{
		Prompt:        st.Prompt,
		VoxelCount:    len(st.Voxels),
		Test:          test,
		SchematicPath: schematicPath,
		DurationMs:    took.Milliseconds(),
		Data:          voxel.MarshalStructure(st),
	}
	if err := s.DB.Create(rec).Error; err != nil {
		log.Printf("[History] ERRO ao salvar geração %q: %v", st.Prompt, err)
		return nil, err
	}
	return rec, nil
}

// Recent retorna os últimos limit registros, do mais novo para o mais antigo.
func (s *Store) Recent(limit int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []GenerationRecord
	err := s.DB.Order("id desc").Limit(limit).Find(&recs).Error
	return recs, err
}

// Get carrega um registro e a estrutura gravada nele.
func (s *Store) Get(id uint) (*GenerationRecord, voxel.Structure, error) {
	var rec GenerationRecord
	if err := s.DB.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voxel.Structure{}, ErrNotFound
		}
		return nil, voxel.Structure{}, err
	}
	st, err := voxel.UnmarshalStructure(rec.Data)
	if err != nil {
		return nil, voxel.Structure{}, fmt.Errorf("history: registro %d corrompido: %w", id, err)
	}
	return &rec, st, nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
