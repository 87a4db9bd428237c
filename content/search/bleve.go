package search

import (
	"context"
	"os"

	"github.com/blevesearch/bleve"
	_ "github.com/blevesearch/bleve/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/mapping"
	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
)

type bleveSearch struct {
	index     bleve.Index
	log       log.Log
	newIndex  bool
	batchSize int64
}

// NewBleve opens the index at path, creating it if needed. An empty path
// creates an in-memory index.
func NewBleve(path string, size int64, log log.Log) (bleveSearch, error) {
	var err error
	var exists bool
	var index bleve.Index

	if size <= 0 {
		size = 100
	}

	if path == "" {
		log.Infoln("Creating in-memory search index")
		if index, err = bleve.NewMemOnly(indexMapping()); err != nil {
			return bleveSearch{}, errors.Wrap(err, "creating in-memory search index")
		}

		return bleveSearch{log: log, index: index, batchSize: size, newIndex: true}, nil
	}

	_, err = os.Stat(path)
	if err == nil {
		log.Infoln("Opening search index " + path)
		index, err = bleve.Open(path)

		if err != nil {
			return bleveSearch{}, errors.Wrap(err, "opening bleve search index")
		}

		exists = true
	} else if os.IsNotExist(err) {
		log.Infoln("Creating search index " + path)
		index, err = bleve.New(path, indexMapping())

		if err != nil {
			return bleveSearch{}, errors.Wrapf(err, "creating search index with path %s", path)
		}
	} else {
		return bleveSearch{}, errors.Wrapf(err, "getting file '%s' stat", path)
	}

	return bleveSearch{log: log, index: index, batchSize: size, newIndex: !exists}, nil
}

func indexMapping() mapping.IndexMapping {
	m := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = "keyword"
	idFieldMapping.IncludeInAll = false
	docMapping.AddFieldMappingsAt("feed_id", idFieldMapping)
	docMapping.AddFieldMappingsAt("user", idFieldMapping)

	m.AddDocumentMapping(m.DefaultType, docMapping)

	return m
}

func (b bleveSearch) IsNewIndex() bool {
	return b.newIndex
}

func (b bleveSearch) Search(ctx context.Context, term string, limit, offset int) ([]content.FeedID, error) {
	q := bleve.NewQueryStringQuery(term)
	if _, err := q.Parse(); err != nil {
		return nil, content.NewValidationError(errors.Wrapf(err, "parsing search term %q", term))
	}

	searchRequest := bleve.NewSearchRequestOptions(q, limit, offset, false)

	searchResult, err := b.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, errors.Wrap(err, "searching")
	}

	ids := make([]content.FeedID, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		ids = append(ids, content.FeedID(hit.ID))
	}

	return ids, nil
}

func (b bleveSearch) BatchIndex(ctx context.Context, feeds []content.Feed, op IndexOperation) error {
	if len(feeds) == 0 {
		return nil
	}

	batch := b.index.NewBatch()
	count := int64(0)

	for i := range feeds {
		f := feeds[i]

		switch op {
		case BatchAdd:
			b.log.Debugf("Indexing feed %s", f)

			if err := batch.Index(prepareFeed(f)); err != nil {
				return errors.Wrapf(err, "adding feed %s to batch", f.ID)
			}
		case BatchDelete:
			b.log.Debugf("Removing feed %s from index", f)

			batch.Delete(string(f.ID))
		default:
			return errors.Errorf("unknown operation type %v", op)
		}

		count++

		if count >= b.batchSize {
			if err := b.index.Batch(batch); err != nil {
				return errors.Wrap(err, "indexing feed batch")
			}
			batch = b.index.NewBatch()
			count = 0
		}
	}

	if count > 0 {
		if err := b.index.Batch(batch); err != nil {
			return errors.Wrap(err, "indexing feed batch")
		}
	}

	return nil
}

func (b bleveSearch) Close() error {
	return b.index.Close()
}
