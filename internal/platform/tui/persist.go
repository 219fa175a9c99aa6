package tui

import (
	"github.com/vovakirdan/dayfill/internal/games/dayfill"
	"github.com/vovakirdan/dayfill/internal/storage"
)

// resume restores saved progress for the session's date. Progress saved
// with another catalog is ignored and overwritten on the next save.
func (m *GameModel) resume() {
	if m.store == nil {
		return
	}
	date := m.session.DateKey()
	p, err := m.store.LoadProgress(date)
	if err != nil {
		m.logger.Warn("cannot load progress", "date", date, "error", err)
		m.session.Post(dayfill.NoticeError, "Saved progress could not be loaded")
		return
	}
	if p == nil {
		return
	}
	if p.Catalog != m.catalogID {
		m.logger.Info("saved progress uses another catalog", "date", date, "saved", p.Catalog, "catalog", m.catalogID)
		return
	}
	if err := m.session.Restore(p.Snapshot); err != nil {
		m.logger.Warn("cannot restore progress", "date", date, "error", err)
		m.session.Post(dayfill.NoticeError, "Saved board is not valid for this catalog")
		return
	}
	m.session.RestoreStats(p.Moves, p.Hints, p.Elapsed)
	m.recorded = p.Completed
	m.logger.Info("progress resumed", "date", date, "pieces", len(p.Snapshot.Pieces), "moves", p.Moves)
	m.session.Post(dayfill.NoticeInfo, "Resumed saved board")
}

// persist writes progress and new moves when autosave is on, and records
// the completion once the puzzle is solved.
func (m *GameModel) persist() {
	if m.store == nil {
		return
	}
	s := m.session
	completed := s.Status() == dayfill.StatusCompleted

	history := s.History()
	if len(history) < m.persisted {
		// Undo dropped moves that were already logged.
		m.persisted = len(history)
	}

	if m.cfg.Game.Autosave || completed {
		st := s.Stats()
		err := m.store.SaveProgress(storage.Progress{
			Date:      s.DateKey(),
			Catalog:   m.catalogID,
			Snapshot:  s.Snapshot(),
			Moves:     st.Moves,
			Hints:     st.HintsUsed,
			Elapsed:   s.Elapsed(),
			Completed: completed,
		})
		if err != nil {
			m.saveFailed("progress", err)
			return
		}
		if len(history) > m.persisted {
			if err := m.store.SaveMoves(s.DateKey(), moveRecords(history[m.persisted:])); err != nil {
				m.saveFailed("moves", err)
				return
			}
			m.persisted = len(history)
		}
	}

	if completed && !m.recorded {
		st := s.Stats()
		_, err := m.store.RecordCompletion(storage.Completion{
			Date:    s.DateKey(),
			Catalog: m.catalogID,
			Moves:   st.Moves,
			Hints:   st.HintsUsed,
			Elapsed: s.Elapsed(),
		})
		if err != nil {
			m.saveFailed("completion", err)
			return
		}
		m.recorded = true
	}
}

func (m *GameModel) saveFailed(what string, err error) {
	m.logger.Error("save failed", "what", what, "date", m.session.DateKey(), "error", err)
	m.session.Post(dayfill.NoticeError, "Could not save "+what)
}

// moveRecords converts session moves to move log rows.
func moveRecords(moves []dayfill.Move) []storage.MoveRecord {
	out := make([]storage.MoveRecord, 0, len(moves))
	for _, mv := range moves {
		out = append(out, storage.MoveRecord{
			ID:      mv.ID.String(),
			Kind:    string(mv.Kind),
			PieceID: string(mv.PieceID),
			FromRow: mv.From.Row,
			FromCol: mv.From.Col,
			ToRow:   mv.To.Row,
			ToCol:   mv.To.Col,
			At:      mv.At,
		})
	}
	return out
}
