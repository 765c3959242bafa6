package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCityName(t *testing.T) {
	valid := []string{"Valencia", "New York", "Saint-Denis", "La Coruna", "london"}
	for _, city := range valid {
		assert.NoError(t, ValidateCityName(city), city)
	}

	invalid := []string{"", "Valencia1", "Madrid!", "a;drop table", "東京", "St. Louis"}
	for _, city := range invalid {
		err := ValidateCityName(city)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, city)
	}
}

func TestValidateCityNameReportsOffendingValue(t *testing.T) {
	err := ValidateCityName("Madrid!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Madrid!")
}
