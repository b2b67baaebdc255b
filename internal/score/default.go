package score

import (
	"database/sql"
	"fmt"
	"time"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultScorer keeps the run history in a sqlite database.
type DefaultScorer struct {
	Path string // Database file, ./scores.db when empty
	Log  *log.Logger

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	if nil == s.Log {
		s.Log = log.Discard()
	}
	path := s.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists scores
	  (
		  id text not null primary key,
		  sum text not null,
		  rate real,
		  score integer,
		  counts blob,
		  outcome text,
		  played_at integer,
		  inputs blob
	  );
	create index if not exists scores_sum on scores(sum);
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create scores table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultScorer) Save(song *game.Song, h *History) error {
	inputs, err := encodeInputs(h.Inputs)
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	counts, err := msgpack.Marshal(&h.Counts)
	if nil != err {
		return fmt.Errorf("unable to marshal counts: %w", err)
	}
	sum := h.Sum
	if sum == "" {
		sum = song.Hash()
	}
	_, err = s.db.Exec(
		"insert into scores(id, sum, rate, score, counts, outcome, played_at, inputs) values(?, ?, ?, ?, ?, ?, ?, ?)",
		h.ID.String(), sum, h.Rate, h.Score, counts, h.Outcome, h.PlayedAt.UnixNano(), inputs,
	)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(song *game.Song) ([]History, error) {
	histories := []History{}
	rows, err := s.db.Query(
		"select id, sum, rate, score, counts, outcome, played_at, inputs from scores where sum = ? order by played_at desc",
		song.Hash(),
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, sum, outcome string
			rate             float64
			points           int
			playedAt         int64
			counts, inputs   []byte
		)
		if err := rows.Scan(&id, &sum, &rate, &points, &counts, &outcome, &playedAt, &inputs); nil != err {
			return nil, err
		}
		h := History{
			Sum:      sum,
			Rate:     rate,
			Score:    points,
			Outcome:  outcome,
			PlayedAt: time.Unix(0, playedAt),
		}
		if h.ID, err = uuid.Parse(id); nil != err {
			s.Log.Warnf("skipping score with invalid id %q", id)
			continue
		}
		if err := msgpack.Unmarshal(counts, &h.Counts); nil != err {
			s.Log.Warnf("skipping score %v: unable to unmarshal counts: %v", h.ID, err)
			continue
		}
		if h.Inputs, err = decodeInputs(inputs); nil != err {
			s.Log.Warnf("skipping score %v: unable to unmarshal inputs: %v", h.ID, err)
			continue
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

// HighScore is the best score of a completed run of the song.
func (s *DefaultScorer) HighScore(song *game.Song) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"select max(score) from scores where sum = ? and outcome = ?",
		song.Hash(), "completed",
	).Scan(&best)
	if nil != err {
		return 0, err
	}
	if !best.Valid {
		return 0, ErrNoHistory
	}
	return int(best.Int64), nil
}
