package ingest

import (
	"context"
	"fmt"

	"github.com/jakefish18/wanikani-parser/internal/extractor"
	"github.com/jakefish18/wanikani-parser/internal/media"
	"github.com/jakefish18/wanikani-parser/internal/subject"
)

// strategy is the kind-specific part of a unit of work.
type strategy interface {
	exists(ctx context.Context, url string) (bool, error)
	process(ctx context.Context, url string) error
}

// strategyFor selects the strategy of a kind.
func (c *Coordinator) strategyFor(kind subject.Kind) (strategy, error) {
	switch kind {
	case subject.KindRadical:
		return &radicalStrategy{c: c, extractor: extractor.NewRadicalExtractor()}, nil
	case subject.KindKanji:
		return &kanjiStrategy{c: c, extractor: extractor.NewKanjiExtractor()}, nil
	case subject.KindVocabulary:
		return &wordStrategy{c: c, extractor: extractor.NewWordExtractor(c.cfg.AudioFormat)}, nil
	}
	return nil, fmt.Errorf("unknown subject kind %q", kind)
}

type radicalStrategy struct {
	c         *Coordinator
	extractor *extractor.RadicalExtractor
}

func (s *radicalStrategy) exists(ctx context.Context, url string) (bool, error) {
	return s.c.radicals.ExistsByURL(ctx, url)
}

func (s *radicalStrategy) process(ctx context.Context, url string) error {
	doc, err := s.c.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	draft, err := s.extractor.Extract(doc, url)
	if err != nil {
		return err
	}
	if draft.Radical.IsImageSymbol {
		if err := s.c.saveMedia(ctx, draft.ImageURL, media.ImageKey(draft.Radical.ImageFilename.String)); err != nil {
			return err
		}
	}
	return s.c.radicals.Create(ctx, draft.Radical)
}

type kanjiStrategy struct {
	c         *Coordinator
	extractor *extractor.KanjiExtractor
}

func (s *kanjiStrategy) exists(ctx context.Context, url string) (bool, error) {
	return s.c.kanji.ExistsByURL(ctx, url)
}

// process resolves component radicals before opening the kanji transaction,
// so a backfill never runs while the unit holds a connection.
func (s *kanjiStrategy) process(ctx context.Context, url string) error {
	doc, err := s.c.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	draft, err := s.extractor.Extract(doc, url)
	if err != nil {
		return err
	}
	ids, err := s.c.resolver.Resolve(ctx, draft.RadicalLabels)
	if err != nil {
		return err
	}
	draft.Kanji.RadicalIDs = ids
	return s.c.kanji.Create(ctx, draft.Kanji)
}

type wordStrategy struct {
	c         *Coordinator
	extractor *extractor.WordExtractor
}

func (s *wordStrategy) exists(ctx context.Context, url string) (bool, error) {
	return s.c.words.ExistsByURL(ctx, url)
}

func (s *wordStrategy) process(ctx context.Context, url string) error {
	doc, err := s.c.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	draft, err := s.extractor.Extract(doc, url)
	if err != nil {
		return err
	}
	if draft.Word.ReadingAudioFilename.Valid {
		if err := s.c.saveMedia(ctx, draft.AudioURL, media.AudioKey(draft.Word.ReadingAudioFilename.String)); err != nil {
			return err
		}
	}
	return s.c.words.Create(ctx, draft.Word)
}
