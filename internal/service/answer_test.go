package service

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"

	"docqa/internal/extract"
	"docqa/internal/generation"
	genMocks "docqa/internal/generation/mocks"
	"docqa/internal/model"
	"docqa/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore keeps documents and questions in memory with store-assigned ordering.
type memStore struct {
	mu        sync.Mutex
	seq       int64
	docs      map[string]*model.Document
	docSeq    map[string]int64
	questions []memQuestion
}

type memQuestion struct {
	seq int64
	q   model.Question
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]*model.Document{}, docSeq: map[string]int64{}}
}

func (s *memStore) Create(_ context.Context, d *model.Document) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	cp := *d
	s.docs[d.ID] = &cp
	s.docSeq[d.ID] = s.seq
	return &cp, nil
}

func (s *memStore) FindByID(_ context.Context, id string) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *memStore) FindLatest(_ context.Context) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *model.Document
	for id, d := range s.docs {
		if latest == nil || s.docSeq[id] > s.docSeq[latest.ID] {
			latest = d
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (s *memStore) List(_ context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.Document, 0, len(s.docs))
	for _, d := range s.docs {
		items = append(items, *d)
	}
	sort.Slice(items, func(i, j int) bool { return s.docSeq[items[i].ID] > s.docSeq[items[j].ID] })
	return &repository.PageResult[model.Document]{Items: items, Total: len(items)}, nil
}

func (s *memStore) Ping(context.Context) error { return nil }

type memQuestions struct{ *memStore }

func (s memQuestions) Create(_ context.Context, q *model.Question) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.questions = append(s.questions, memQuestion{seq: s.seq, q: *q})
	cp := *q
	return &cp, nil
}

func (s memQuestions) FindLatestByDocument(_ context.Context, documentID string) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *memQuestion
	for i := range s.questions {
		mq := &s.questions[i]
		if mq.q.DocumentID == documentID && (best == nil || mq.seq > best.seq) {
			best = mq
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	cp := best.q
	return &cp, nil
}

type pipeline struct {
	docs      DocumentService
	questions QuestionService
	answers   AnswerService
	gen       *genMocks.MockGenerator
}

func newPipeline() *pipeline {
	store := newMemStore()
	gen := new(genMocks.MockGenerator)
	docs := NewDocumentService(store, extract.Default(), nil)
	questions := NewQuestionService(store, memQuestions{store})
	return &pipeline{
		docs:      docs,
		questions: questions,
		answers:   NewAnswerService(docs, questions, gen, "gemini-1.5-flash"),
		gen:       gen,
	}
}

func (p *pipeline) ingest(t *testing.T, text string) *model.Document {
	t.Helper()
	doc, err := p.docs.Ingest(context.Background(), []byte(text), model.DocumentMeta{Filename: "doc.txt", ContentType: "text/plain"})
	require.NoError(t, err)
	return doc
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "The sky is blue.\n\nQuestion: What color is the sky?", BuildPrompt("The sky is blue.", "What color is the sky?"))
	assert.Equal(t, "\n\nQuestion: ", BuildPrompt("", ""))
}

func TestAnswer_EndToEnd(t *testing.T) {
	ctx := context.Background()
	p := newPipeline()

	doc := p.ingest(t, "The sky is blue.")

	got, err := p.docs.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", got.Content)

	_, err = p.questions.Submit(ctx, doc.ID, "What color is the sky?")
	require.NoError(t, err)

	p.gen.On("Generate", mock.Anything, generation.Request{
		Prompt: "The sky is blue.\n\nQuestion: What color is the sky?",
		Model:  "gemini-1.5-flash",
	}).Return(&generation.Response{Text: "blue"}, nil).Once()

	answer, err := p.answers.Answer(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "blue", answer)

	latest, err := p.docs.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, latest.ID)

	p.gen.AssertExpectations(t)
}

func TestIngest_PDFRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newPipeline()

	data, err := os.ReadFile("../extract/testdata/sky.pdf")
	require.NoError(t, err)

	doc, err := p.docs.Ingest(ctx, data, model.DocumentMeta{Filename: "sky.pdf", ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "The sky is blue.")
	assert.Equal(t, int64(len(data)), doc.Size)

	got, err := p.docs.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, "application/pdf", got.ContentType)
}

func TestAnswer_UppercaseID(t *testing.T) {
	ctx := context.Background()
	p := newPipeline()
	doc := p.ingest(t, "The sky is blue.")
	upper := strings.ToUpper(doc.ID)

	got, err := p.docs.Get(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)

	q, err := p.questions.Submit(ctx, upper, "What color is the sky?")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, q.DocumentID)

	p.gen.On("Generate", mock.Anything, mock.Anything).Return(&generation.Response{Text: "blue"}, nil).Once()

	answer, err := p.answers.Answer(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, "blue", answer)
	p.gen.AssertExpectations(t)
}

func TestAnswer_LatestQuestionWins(t *testing.T) {
	ctx := context.Background()
	p := newPipeline()
	doc := p.ingest(t, "Paris is the capital of France.")

	for _, q := range []string{"first", "second", "third"} {
		_, err := p.questions.Submit(ctx, doc.ID, q)
		require.NoError(t, err)
	}

	p.gen.On("Generate", mock.Anything, mock.MatchedBy(func(r generation.Request) bool {
		return r.Prompt == BuildPrompt("Paris is the capital of France.", "third")
	})).Return(&generation.Response{Text: "ok"}, nil).Once()

	_, err := p.answers.Answer(ctx, doc.ID)
	require.NoError(t, err)
	p.gen.AssertExpectations(t)
}

func TestAnswer_NoCaching(t *testing.T) {
	ctx := context.Background()
	p := newPipeline()
	doc := p.ingest(t, "content")
	_, err := p.questions.Submit(ctx, doc.ID, "q")
	require.NoError(t, err)

	var prompts []string
	p.gen.On("Generate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		prompts = append(prompts, args.Get(1).(generation.Request).Prompt)
	}).Return(&generation.Response{Text: "a"}, nil).Twice()

	_, err = p.answers.Answer(ctx, doc.ID)
	require.NoError(t, err)
	_, err = p.answers.Answer(ctx, doc.ID)
	require.NoError(t, err)

	require.Len(t, prompts, 2)
	assert.Equal(t, prompts[0], prompts[1])
	p.gen.AssertNumberOfCalls(t, "Generate", 2)
}

func TestAnswer_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		p := newPipeline()
		_, err := p.answers.Answer(ctx, "abc")
		assert.ErrorIs(t, err, ErrInvalidID)
		p.gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("unknown document", func(t *testing.T) {
		p := newPipeline()
		_, err := p.answers.Answer(ctx, docID)
		assert.ErrorIs(t, err, ErrDocumentNotFound)

		_, err = p.questions.Submit(ctx, docID, "q")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("zero questions", func(t *testing.T) {
		p := newPipeline()
		doc := p.ingest(t, "content")
		_, err := p.answers.Answer(ctx, doc.ID)
		assert.ErrorIs(t, err, ErrQuestionNotFound)
		p.gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("missing credential", func(t *testing.T) {
		p := newPipeline()
		doc := p.ingest(t, "content")
		_, err := p.questions.Submit(ctx, doc.ID, "q")
		require.NoError(t, err)
		p.gen.On("Generate", mock.Anything, mock.Anything).Return(nil, generation.ErrMissingCredential)

		_, err = p.answers.Answer(ctx, doc.ID)
		assert.ErrorIs(t, err, generation.ErrMissingCredential)
		var genErr *GenerationError
		assert.False(t, errors.As(err, &genErr))
	})

	t.Run("upstream failure", func(t *testing.T) {
		p := newPipeline()
		doc := p.ingest(t, "content")
		_, err := p.questions.Submit(ctx, doc.ID, "q")
		require.NoError(t, err)
		upstream := &generation.UpstreamError{StatusCode: 503, Body: "overloaded"}
		p.gen.On("Generate", mock.Anything, mock.Anything).Return(nil, upstream).Once()

		_, err = p.answers.Answer(ctx, doc.ID)
		var genErr *GenerationError
		require.True(t, errors.As(err, &genErr))
		assert.ErrorIs(t, err, upstream)
		p.gen.AssertNumberOfCalls(t, "Generate", 1)
	})
}

func TestLatestDocument_FollowsIngestOrder(t *testing.T) {
	ctx := context.Background()
	p := newPipeline()

	_, err := p.docs.Latest(ctx)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	p.ingest(t, "one")
	second := p.ingest(t, "two")

	latest, err := p.docs.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}
