package service

import (
	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/valuation"
)

// NoteService handles structured note business logic.
type NoteService struct {
	noteRepo *repository.NoteRepository
}

// NewNoteService creates a new NoteService with the provided repository.
func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// CreateNote revalues the legs and inserts a new structured note.
func (s *NoteService) CreateNote(n model.StructuredNote) (model.StructuredNote, error) {
	n.ID = uuid.New().String()
	valuation.RevalueNote(&n)
	if err := s.noteRepo.CreateNote(n); err != nil {
		return model.StructuredNote{}, err
	}
	return n, nil
}

// UpdateNote revalues the legs and overwrites an existing note. Marking a
// note exited goes through here too; the note stays on record but drops out
// of every total.
func (s *NoteService) UpdateNote(n model.StructuredNote) (model.StructuredNote, error) {
	valuation.RevalueNote(&n)
	if err := s.noteRepo.UpdateNote(n); err != nil {
		return model.StructuredNote{}, err
	}
	return n, nil
}

// GetNote retrieves one structured note.
func (s *NoteService) GetNote(noteID string) (model.StructuredNote, error) {
	return s.noteRepo.GetNote(noteID)
}

// GetNotes retrieves all structured notes for a client.
func (s *NoteService) GetNotes(clientID string) ([]model.StructuredNote, error) {
	return s.noteRepo.GetNotes(clientID)
}

// DeleteNote removes one structured note.
func (s *NoteService) DeleteNote(noteID string) error {
	return s.noteRepo.DeleteNote(noteID)
}
