package subject

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var radicalRowColumns = []string{"id", "url", "level", "symbol", "meaning", "mnemonic", "image_filename", "is_image_symbol", "created_at"}

func TestDBRadicalRepository_BatchCreate(t *testing.T) {
	tests := []struct {
		name      string
		radicals  []*Radical
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []int64
		wantErr   error
	}{
		{
			name: "inserts each radical and assigns ids",
			radicals: []*Radical{
				{URL: "https://www.wanikani.com/radicals/ground", Level: 1, Symbol: "一", Meaning: "Ground", Mnemonic: "GROUND"},
				{URL: "https://www.wanikani.com/radicals/gun", Level: 2, Meaning: "Gun", Mnemonic: "GUN", IsImageSymbol: true, ImageFilename: NullString("Gun.svg")},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO radicals \\(url, level, symbol, meaning, mnemonic, image_filename, is_image_symbol\\) VALUES \\(\\?, \\?, \\?, \\?, \\?, \\?, \\?\\)").
					WithArgs("https://www.wanikani.com/radicals/ground", 1, "一", "Ground", "GROUND", NullString(""), false).
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec("INSERT INTO radicals").
					WithArgs("https://www.wanikani.com/radicals/gun", 2, "", "Gun", "GUN", NullString("Gun.svg"), true).
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectCommit()
			},
			wantIDs: []int64{10, 11},
		},
		{
			name:      "empty input does nothing",
			radicals:  nil,
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "duplicate url rolls back",
			radicals: []*Radical{
				{URL: "https://www.wanikani.com/radicals/ground", Level: 1, Symbol: "一", Meaning: "Ground"},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO radicals").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRadicalRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			err = repo.BatchCreate(context.Background(), tt.radicals)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				for i, radical := range tt.radicals {
					assert.Equal(t, tt.wantIDs[i], radical.ID)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRadicalRepository_ExistsByURL(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      bool
		wantErr   bool
	}{
		{
			name: "exists",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM radicals WHERE url = \\?\\)").
					WithArgs("https://www.wanikani.com/radicals/ground").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))
			},
			want: false,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT EXISTS").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRadicalRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.ExistsByURL(context.Background(), "https://www.wanikani.com/radicals/ground")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRadicalRepository_FindByMeaning(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Radical
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, url, level, symbol, meaning, mnemonic, image_filename, is_image_symbol, created_at FROM radicals WHERE meaning = \\? ORDER BY id LIMIT 1").
					WithArgs("Ground").
					WillReturnRows(sqlmock.NewRows(radicalRowColumns).
						AddRow(3, "https://www.wanikani.com/radicals/ground", 1, "一", "Ground", "GROUND", nil, false, now))
			},
			want: &Radical{
				ID: 3, URL: "https://www.wanikani.com/radicals/ground", Level: 1, Symbol: "一",
				Meaning: "Ground", Mnemonic: "GROUND", CreatedAt: now,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM radicals WHERE meaning = \\?").
					WithArgs("Ground").
					WillReturnRows(sqlmock.NewRows(radicalRowColumns))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRadicalRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindByMeaning(context.Background(), "Ground")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRadicalRepository_FindUpToLevel(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM radicals WHERE level <= \\? ORDER BY level, id").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(radicalRowColumns).
			AddRow(1, "https://www.wanikani.com/radicals/ground", 1, "一", "Ground", "", nil, false, now).
			AddRow(2, "https://www.wanikani.com/radicals/gun", 2, "", "Gun", "", "Gun.svg", true, now))

	repo := NewDBRadicalRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.FindUpToLevel(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "一", got[0].Label())
	assert.Equal(t, "Gun", got[1].Label())
	assert.Equal(t, "Gun.svg", got[1].ImageFilename.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}
