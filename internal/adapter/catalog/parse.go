package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"tag-validator/internal/domain"

	"go.uber.org/zap"
)

var (
	errNoQuestionTags = errors.New("'question_tags' key not found in catalog document")
	errNoModules      = errors.New("no module tag lists could be parsed from catalog document")
)

type document struct {
	QuestionTags map[string]json.RawMessage `json:"question_tags"`
}

type valueField struct {
	Value string `json:"value"`
}

type topicEntry struct {
	TopicName valueField        `json:"topic_name"`
	SubTopics []json.RawMessage `json:"sub_topics"`
}

type subTopicEntry struct {
	SubTopicName valueField `json:"sub_topic_name"`
}

// Parse builds a ReferenceCatalog from the taxonomy JSON document. Module
// entries that are not lists are skipped; items that are not objects are
// ignored. It fails when the document has no usable module at all.
func Parse(data []byte, logger *zap.Logger) (domain.ReferenceCatalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog document is not valid JSON: %w", err)
	}
	if len(doc.QuestionTags) == 0 {
		return nil, errNoQuestionTags
	}

	catalog := make(domain.ReferenceCatalog, len(doc.QuestionTags))
	for key, raw := range doc.QuestionTags {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			logger.Warn("Catalog module is not a list, skipping", zap.String("module_key", key), zap.Error(err))
			continue
		}

		sets := domain.TagSets{
			Topics:    make(map[string]struct{}),
			SubTopics: make(map[string]struct{}),
		}
		for _, item := range items {
			var topic topicEntry
			if err := json.Unmarshal(item, &topic); err != nil {
				logger.Debug("Skipping malformed topic entry", zap.String("module_key", key), zap.Error(err))
				continue
			}
			if topic.TopicName.Value != "" {
				sets.Topics[topic.TopicName.Value] = struct{}{}
			}
			for _, subRaw := range topic.SubTopics {
				var sub subTopicEntry
				if err := json.Unmarshal(subRaw, &sub); err != nil {
					logger.Debug("Skipping malformed sub-topic entry", zap.String("module_key", key), zap.Error(err))
					continue
				}
				if sub.SubTopicName.Value != "" {
					sets.SubTopics[sub.SubTopicName.Value] = struct{}{}
				}
			}
		}
		catalog[key] = sets
	}

	if len(catalog) == 0 {
		return nil, errNoModules
	}
	return catalog, nil
}
