package repository

import (
	"context"
	"testing"
	"time"

	"pijat_jogja/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var footerColumns = []string{
	"id", "site_name", "site_description", "wa_number", "wa_message", "phone_display", "email", "alamat",
	"instagram_url", "copyright_text", "copyright_subtext", "created_at", "updated_at",
}

func TestFooterRepository_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("FROM footer_settings").
		WillReturnRows(pgxmock.NewRows(footerColumns).AddRow(
			int64(1), "Pijat Jogja", "desc", "6281234567890", "Halo", "+62 812", "a@b.c", "Sleman",
			"https://instagram.com/x", "copy", "sub", now, now))

	repo := NewFooterRepository(mock)
	f, err := repo.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "Sleman", f.Alamat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFooterRepository_Get_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM footer_settings").WillReturnRows(pgxmock.NewRows(footerColumns))

	repo := NewFooterRepository(mock)
	f, err := repo.Get(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, f)
}

func TestFooterRepository_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	f := model.DefaultFooterSettings()
	now := time.Now()
	mock.ExpectQuery("INSERT INTO footer_settings").
		WithArgs(f.SiteName, f.SiteDescription, f.WANumber, f.WAMessage, f.PhoneDisplay, f.Email, f.Alamat,
			f.InstagramURL, f.CopyrightText, f.CopyrightSubtext).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	repo := NewFooterRepository(mock)
	require.NoError(t, repo.Upsert(context.Background(), &f))

	assert.Equal(t, int64(1), f.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
