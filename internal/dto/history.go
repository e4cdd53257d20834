package dto

import (
	"time"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// ListHistoryParams defines parameters for listing conversion history.
type ListHistoryParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// HistoryEntryResponse is a single stored conversion.
type HistoryEntryResponse struct {
	EntryID   string    `json:"entryID"`
	Amount    string    `json:"amount"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListHistoryResponse is a page of history, newest first.
type ListHistoryResponse struct {
	Entries   []HistoryEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ClearHistoryResponse reports how many entries a bulk clear removed.
type ClearHistoryResponse struct {
	Removed int64 `json:"removed"`
}

// ToHistoryEntryResponse converts a domain entry into its API form.
func ToHistoryEntryResponse(e domain.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		EntryID:   e.EntryID,
		Amount:    e.Amount.String(),
		From:      e.From.String(),
		To:        e.To.String(),
		Result:    e.Result,
		CreatedAt: e.CreatedAt,
	}
}

// ToListHistoryResponse converts a page of entries.
func ToListHistoryResponse(entries []domain.HistoryEntry, nextToken *string) ListHistoryResponse {
	resp := ListHistoryResponse{
		Entries:   make([]HistoryEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i, e := range entries {
		resp.Entries[i] = ToHistoryEntryResponse(e)
	}
	return resp
}
