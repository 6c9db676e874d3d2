package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const questionsPrefix = "questions/"

// QuestionStatusUnanswered is the status assigned to new submissions.
const QuestionStatusUnanswered = "unanswered"

// Question is one user-submitted question, stored as a JSON object under
// questions/ in the submissions bucket.
type Question struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Question    string    `json:"question"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`

	// Key is the object key, needed for status updates. Set on reads.
	Key string `json:"key,omitempty"`
}

// QuestionStore persists question submissions.
type QuestionStore interface {
	Add(ctx context.Context, q Question) error
	List(ctx context.Context) ([]Question, error)
	UpdateStatus(ctx context.Context, key string, status string) error
}

type s3QuestionStore struct {
	client *s3.Client
	bucket string
}

func NewS3QuestionStore(client *s3.Client, bucket string) QuestionStore {
	return s3QuestionStore{client: client, bucket: bucket}
}

func (s s3QuestionStore) Add(ctx context.Context, q Question) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = QuestionStatusUnanswered
	}
	if q.SubmittedAt.IsZero() {
		q.SubmittedAt = time.Now().UTC()
	}

	key := fmt.Sprintf("%s%s-%s.json", questionsPrefix, q.SubmittedAt.Format(time.RFC3339), q.ID)
	body, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(string(body)),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to store question: %w", err)
	}
	return nil
}

func (s s3QuestionStore) List(ctx context.Context) ([]Question, error) {
	resp, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(questionsPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := []Question{}
	for _, obj := range resp.Contents {
		key := aws.ToString(obj.Key)
		if strings.HasSuffix(key, "/") {
			continue
		}
		q, err := s.get(ctx, key)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (s s3QuestionStore) UpdateStatus(ctx context.Context, key string, status string) error {
	q, err := s.get(ctx, key)
	if err != nil {
		return err
	}
	q.Status = status
	q.Key = ""

	body, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(string(body)),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to update question %s: %w", key, err)
	}
	return nil
}

func (s s3QuestionStore) get(ctx context.Context, key string) (Question, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return Question{}, fmt.Errorf("failed to get question %s: %w", key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Question{}, fmt.Errorf("failed to read question %s: %w", key, err)
	}
	q := Question{}
	if err := json.Unmarshal(body, &q); err != nil {
		return Question{}, fmt.Errorf("failed to decode question %s: %w", key, err)
	}
	q.Key = key
	return q, nil
}
