package search

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
	elastic "gopkg.in/olivere/elastic.v5"
)

const (
	elasticIndexName = "feedkeeper"
	elasticFeedType  = "feed"
)

type elasticSearch struct {
	client    *elastic.Client
	log       log.Log
	newIndex  bool
	batchSize int64
}

func NewElastic(url string, size int64, log log.Log) (elasticSearch, error) {
	client, err := elastic.NewClient(elastic.SetURL(url), elastic.SetSniff(false))
	if err != nil {
		return elasticSearch{}, errors.Wrapf(err, "connecting to elastic server '%s'", url)
	}

	ctx := context.Background()

	exists, err := client.IndexExists(elasticIndexName).Do(ctx)
	if err != nil {
		return elasticSearch{}, errors.Wrap(err, "checking index existence")
	} else if !exists {
		log.Infoln("Creating search index " + elasticIndexName)
		if _, err = client.CreateIndex(elasticIndexName).Do(ctx); err != nil {
			return elasticSearch{}, errors.Wrap(err, "creating index")
		}
	}

	if size <= 0 {
		size = 100
	}

	return elasticSearch{client: client, log: log, batchSize: size, newIndex: !exists}, nil
}

func (e elasticSearch) IsNewIndex() bool {
	return e.newIndex
}

func (e elasticSearch) Search(ctx context.Context, term string, limit, offset int) ([]content.FeedID, error) {
	query := elastic.NewMultiMatchQuery(term, "author", "url", "link").Type("phrase_prefix")

	res, err := e.client.Search().
		Index(elasticIndexName).
		Type(elasticFeedType).
		Query(query).
		From(offset).Size(limit).
		Do(ctx)
	if err != nil {
		return nil, searchError(err)
	}

	if res.Hits == nil || len(res.Hits.Hits) == 0 {
		return []content.FeedID{}, nil
	}

	ids := make([]content.FeedID, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, content.FeedID(hit.Id))
	}

	return ids, nil
}

// searchError reports queries rejected by the server as invalid input.
func searchError(err error) error {
	if e, ok := err.(*elastic.Error); ok && e.Status == http.StatusBadRequest {
		return content.NewValidationError(errors.Wrap(err, "performing search"))
	}

	return errors.Wrap(err, "performing search")
}

func (e elasticSearch) BatchIndex(ctx context.Context, feeds []content.Feed, op IndexOperation) error {
	if len(feeds) == 0 {
		return nil
	}

	bulk := e.client.Bulk()
	count := int64(0)

	for i := range feeds {
		f := feeds[i]

		var req elastic.BulkableRequest
		switch op {
		case BatchAdd:
			e.log.Debugf("Indexing feed %s", f)

			id, doc := prepareFeed(f)
			req = elastic.NewBulkIndexRequest().Index(elasticIndexName).Type(elasticFeedType).Id(id).Doc(doc)
		case BatchDelete:
			e.log.Debugf("Removing feed %s from the index", f)

			req = elastic.NewBulkDeleteRequest().Index(elasticIndexName).Type(elasticFeedType).Id(string(f.ID))
		default:
			return errors.Errorf("unknown operation type %v", op)
		}

		bulk.Add(req)
		count++

		if count >= e.batchSize {
			if err := e.doBulk(ctx, bulk); err != nil {
				return err
			}
			bulk = e.client.Bulk()
			count = 0
		}
	}

	if count > 0 {
		return e.doBulk(ctx, bulk)
	}

	return nil
}

func (e elasticSearch) doBulk(ctx context.Context, bulk *elastic.BulkService) error {
	res, err := bulk.Do(ctx)
	if err != nil {
		return errors.Wrap(err, "indexing feed batch")
	}

	if failed := res.Failed(); len(failed) > 0 {
		for _, item := range failed {
			// Deleting a document that was never indexed is not a failure.
			if item.Status == 404 {
				continue
			}

			return errors.Errorf("indexing feed %s: %d %v", item.Id, item.Status, item.Error)
		}
	}

	return nil
}
