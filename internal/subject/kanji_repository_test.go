package subject

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBKanjiRepository_Create(t *testing.T) {
	newKanji := func() *Kanji {
		return &Kanji{
			URL:    "https://www.wanikani.com/kanji/上",
			Level:  1,
			Symbol: "上",
			Meanings: []KanjiMeaning{
				{Meaning: "Up", IsPrimary: true, Mnemonic: "TOP", Hint: "hint"},
				{Meaning: "Above"},
			},
			Readings: []KanjiReading{
				{Reading: "じょう", Type: ReadingOn, IsPrimary: true, Mnemonic: "JOE", Hint: "h"},
				{Reading: "うえ", Type: ReadingKun},
			},
			RadicalIDs: []int64{7, 8, 7},
		}
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts kanji and owned records in one transaction",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO kanji \\(url, level, symbol\\) VALUES \\(\\?, \\?, \\?\\)").
					WithArgs("https://www.wanikani.com/kanji/上", 1, "上").
					WillReturnResult(sqlmock.NewResult(42, 1))
				mock.ExpectExec("INSERT INTO kanji_meanings \\(kanji_id, meaning, is_primary, mnemonic, hint\\) VALUES \\(\\?, \\?, \\?, \\?, \\?\\), \\(\\?, \\?, \\?, \\?, \\?\\)").
					WithArgs(int64(42), "Up", true, "TOP", "hint", int64(42), "Above", false, "", "").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO kanji_readings \\(kanji_id, reading, type, is_primary, mnemonic, hint\\)").
					WithArgs(int64(42), "じょう", "O", true, "JOE", "h", int64(42), "うえ", "K", false, "", "").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO kanji_radicals \\(kanji_id, radical_id\\) VALUES \\(\\?, \\?\\), \\(\\?, \\?\\)$").
					WithArgs(int64(42), int64(7), int64(42), int64(8)).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name: "child insert failure rolls back the kanji",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO kanji ").WillReturnResult(sqlmock.NewResult(42, 1))
				mock.ExpectExec("INSERT INTO kanji_meanings").WillReturnError(fmt.Errorf("connection lost"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBKanjiRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			kanji := newKanji()
			err = repo.Create(context.Background(), kanji)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(42), kanji.ID)
				for _, m := range kanji.Meanings {
					assert.Equal(t, int64(42), m.KanjiID)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBKanjiRepository_PrimaryReadings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, kanji_id, reading, type, is_primary, mnemonic, hint FROM kanji_readings WHERE kanji_id = \\? AND is_primary = \\? ORDER BY id").
		WithArgs(int64(5), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kanji_id", "reading", "type", "is_primary", "mnemonic", "hint"}).
			AddRow(1, 5, "うえ", "K", true, "m", "h").
			AddRow(2, 5, "かみ", "K", true, "m", "h"))

	repo := NewDBKanjiRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.PrimaryReadings(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []KanjiReading{
		{ID: 1, KanjiID: 5, Reading: "うえ", Type: ReadingKun, IsPrimary: true, Mnemonic: "m", Hint: "h"},
		{ID: 2, KanjiID: 5, Reading: "かみ", Type: ReadingKun, IsPrimary: true, Mnemonic: "m", Hint: "h"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, uniqueIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}
