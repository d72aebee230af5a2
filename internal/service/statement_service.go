package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/storage"
)

const statementURLTTL = 15 * time.Minute

// Statement describes an exported monthly statement.
type Statement struct {
	Key     string
	URL     string
	Entries int
	Period  domain.Period
}

// StatementService exports a month of entries as CSV to object storage.
type StatementService interface {
	Export(ctx context.Context, userID int64, period domain.Period) (*Statement, error)
	List(ctx context.Context, userID int64) ([]storage.ObjectInfo, error)
}

type statementService struct {
	ledger    LedgerService
	store     storage.Service
	keyPrefix string
}

// NewStatementService returns a StatementService. A nil store disables exports.
func NewStatementService(ledger LedgerService, store storage.Service, keyPrefix string) StatementService {
	return &statementService{
		ledger:    ledger,
		store:     store,
		keyPrefix: strings.Trim(keyPrefix, "/"),
	}
}

func (s *statementService) Export(ctx context.Context, userID int64, period domain.Period) (*Statement, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	entries, err := s.ledger.EntriesForPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	body, err := RenderStatementCSV(entries)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s-%s.csv", s.userPrefix(userID), period, uuid.NewString())
	if err := s.store.PutObject(ctx, key, bytes.NewReader(body), "text/csv"); err != nil {
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, key, statementURLTTL)
	if err != nil {
		return nil, err
	}

	return &Statement{
		Key:     key,
		URL:     url,
		Entries: len(entries),
		Period:  period,
	}, nil
}

func (s *statementService) List(ctx context.Context, userID int64) ([]storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	return s.store.ListObjects(ctx, s.userPrefix(userID))
}

func (s *statementService) userPrefix(userID int64) string {
	prefix := fmt.Sprintf("user-%d/", userID)
	if s.keyPrefix != "" {
		prefix = s.keyPrefix + "/" + prefix
	}
	return prefix
}

// RenderStatementCSV writes entries as CSV with a header row.
func RenderStatementCSV(entries []domain.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "date", "type", "category", "amount"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(domain.DateLayout),
			string(e.Type),
			e.Category,
			e.Amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
