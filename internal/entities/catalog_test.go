package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func year(y int) *int { return &y }

func TestAuthor_Lifespan(t *testing.T) {
	assert.Equal(t, "1847-1912", Author{BirthYear: year(1847), DeathYear: year(1912)}.Lifespan())
	assert.Equal(t, "1800-?", Author{BirthYear: year(1800)}.Lifespan())
	assert.Equal(t, "?-1616", Author{DeathYear: year(1616)}.Lifespan())
	assert.Equal(t, "?", Author{}.Lifespan())
}
