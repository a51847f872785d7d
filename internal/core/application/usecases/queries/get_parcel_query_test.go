package queries_test

import (
	"testing"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetParcelQuery(id.String())
	require.NoError(t, err)
	assert.True(t, query.ParcelID().IsEqual(id))
	assert.NoError(t, query.Validate())
}

func TestNewGetParcelQuery_MalformedID(t *testing.T) {
	for _, raw := range []string{"", "abc", "123e4567-e89b-12d3-a456"} {
		_, err := queries.NewGetParcelQuery(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestGetParcelQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetParcelQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelQueryIsNotConstructed)
}

func TestNewGetOverdueParcelsQuery_ValidInput(t *testing.T) {
	asOf := time.Now()
	query, err := queries.NewGetOverdueParcelsQuery(asOf)
	require.NoError(t, err)
	assert.Equal(t, asOf, query.AsOf())
	assert.NoError(t, query.Validate())
}

func TestNewGetOverdueParcelsQuery_ZeroTime(t *testing.T) {
	_, err := queries.NewGetOverdueParcelsQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOverdueParcelsQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOverdueParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOverdueParcelsQueryIsNotConstructed)
}
