package service

import (
	"math/rand"
	"sync"

	"github.com/avc-dev/url-alias/internal/model"
)

const (
	DefaultCodeLength = 8
	AllowedChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// CodeGenerator генерирует случайные коды из букв и цифр.
// *rand.Rand не потокобезопасен, поэтому доступ к нему защищён мьютексом
type CodeGenerator struct {
	random *rand.Rand
	length int
	mutex  sync.Mutex
}

// NewCodeGenerator создает новый генератор кодов заданной длины
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}

	return &CodeGenerator{
		random: rand.New(rand.NewSource(rand.Int63())),
		length: length,
	}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	return model.Code(g.generateRandomString())
}

func (g *CodeGenerator) generateRandomString() string {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	result := make([]byte, g.length)

	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}

	return string(result)
}
