package pgx

import (
	"context"

	"github.com/daralshefa/chatbot/backend/pkg/dialog"
)

// ListKnowledgeRecords returns all authored dialog rows ordered by insertion,
// so duplicate node ids resolve deterministically during graph assembly.
func (s *DBStorage) ListKnowledgeRecords(ctx context.Context) ([]dialog.KnowledgeRecord, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT intent_name, bot_response, COALESCE(question_examples, '')
		FROM knowledge_base
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []dialog.KnowledgeRecord
	for rows.Next() {
		var rec dialog.KnowledgeRecord
		if err := rows.Scan(&rec.NodeID, &rec.MessageText, &rec.DirectiveSpec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
