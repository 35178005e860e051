package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

const collectionForum = "forum"

// forumDocID is the fixed _id of the single document holding the whole
// aggregate.
const forumDocID = "forum"

// ForumRepository stores the forum aggregate as one replace-on-save document.
type ForumRepository struct {
	col *mongo.Collection
}

func NewForumRepository(db *mongo.Database) *ForumRepository {
	return &ForumRepository{col: db.Collection(collectionForum)}
}

type forumDoc struct {
	ID    string       `bson:"_id"`
	Forum domain.Forum `bson:"forum"`
}

// Load fetches the forum document. A missing document or one failing the
// shape check surfaces as domain.ErrAggregateNotFound so the caller reseeds.
func (r *ForumRepository) Load(ctx context.Context) (*domain.Forum, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc forumDoc
	err := r.col.FindOne(ctx, bson.M{"_id": forumDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAggregateNotFound
		}
		return nil, fmt.Errorf("forum load: %w", err)
	}
	if !doc.Forum.ShapeValid() {
		return nil, domain.ErrAggregateNotFound
	}
	return &doc.Forum, nil
}

// Save replaces the stored document wholesale, creating it when absent.
func (r *ForumRepository) Save(ctx context.Context, forum *domain.Forum) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := forumDoc{ID: forumDocID, Forum: *forum}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": forumDocID}, doc, opts); err != nil {
		return fmt.Errorf("forum save: %w", err)
	}
	return nil
}
