// Package db keeps articulation profiles in a DynamoDB table. Each item holds
// the pattern of one articulation type: PK is the profile name, SK the type.
package db

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/cockroachdb/errors"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/profile"
)

// DynamoDB accepts at most 25 puts per BatchWriteItem call.
const maxBatchWrite = 25

// Unprocessed writes are resubmitted up to this many times in total, with the
// wait doubling after each attempt.
const (
	maxBatchAttempts    = 5
	defaultBatchBackoff = 50 * time.Millisecond
)

type Config struct {
	Endpoint string
	Region   string
	Table    string
}

type Store struct {
	client  dynamodbiface.DynamoDBAPI
	table   string
	backoff time.Duration
}

type patternItem struct {
	PK     string                    `dynamodbav:"PK"`
	SK     string                    `dynamodbav:"SK"`
	Points model.ArticulationPattern `dynamodbav:"Points"`
}

func NewStore(cfg Config) (*Store, error) {
	if cfg.Table == "" {
		return nil, errors.WithHint(errors.New("no profile table configured"),
			"set profile.table or ARTICULEX_PROFILE_TABLE")
	}
	awsCfg := &aws.Config{}
	if cfg.Region != "" {
		awsCfg.Region = aws.String(cfg.Region)
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating DynamoDB session")
	}
	return NewStoreWithClient(dynamodb.New(sess), cfg.Table), nil
}

func NewStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table, backoff: defaultBatchBackoff}
}

// LoadProfile reads every pattern stored under name.
func (s *Store) LoadProfile(ctx context.Context, name string) (*profile.Profile, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(name)},
		},
	}

	var items []map[string]*dynamodb.AttributeValue
	err := s.client.QueryPagesWithContext(ctx, input, func(page *dynamodb.QueryOutput, last bool) bool {
		items = append(items, page.Items...)
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "querying profile %q from %s", name, s.table)
	}
	if len(items) == 0 {
		return nil, errors.Newf("profile %q not found in %s", name, s.table)
	}
	return DecodeItems(name, items)
}

// SaveProfile writes one item per articulation type of p.
func (s *Store) SaveProfile(ctx context.Context, p *profile.Profile) error {
	var requests []*dynamodb.WriteRequest
	for _, t := range p.Types() {
		item, err := dynamodbattribute.MarshalMap(patternItem{PK: p.Name, SK: t.String(), Points: p.Pattern(t)})
		if err != nil {
			return errors.Wrapf(err, "encoding pattern %s", t)
		}
		requests = append(requests, &dynamodb.WriteRequest{PutRequest: &dynamodb.PutRequest{Item: item}})
	}

	for start := 0; start < len(requests); start += maxBatchWrite {
		end := start + maxBatchWrite
		if end > len(requests) {
			end = len(requests)
		}
		if err := s.writeBatch(ctx, requests[start:end]); err != nil {
			return errors.Wrapf(err, "writing profile %q to %s", p.Name, s.table)
		}
	}
	return nil
}

// writeBatch submits pending and resubmits whatever DynamoDB hands back as
// unprocessed until nothing is left or the attempts run out.
func (s *Store) writeBatch(ctx context.Context, pending []*dynamodb.WriteRequest) error {
	wait := s.backoff
	for attempt := 1; ; attempt++ {
		out, err := s.client.BatchWriteItemWithContext(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]*dynamodb.WriteRequest{s.table: pending},
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems[s.table]
		if len(pending) == 0 {
			return nil
		}
		if attempt == maxBatchAttempts {
			return errors.Newf("%d items left unprocessed after %d attempts", len(pending), attempt)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}

// DecodeItems turns raw table items into a profile named name.
func DecodeItems(name string, items []map[string]*dynamodb.AttributeValue) (*profile.Profile, error) {
	p := profile.New(name)
	for _, raw := range items {
		var item patternItem
		if err := dynamodbattribute.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrapf(err, "decoding profile %q item", name)
		}
		t, ok := model.ParseArticulationType(item.SK)
		if !ok || t == model.Undefined {
			return nil, errors.Newf("profile %q: unknown articulation type %q", name, item.SK)
		}
		if err := profile.ValidatePattern(item.Points); err != nil {
			return nil, errors.Wrapf(err, "profile %q: pattern %s", name, item.SK)
		}
		p.Set(t, item.Points)
	}
	return p, nil
}
