package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/listing"
)

// bloomInitBatch is the number of ids loaded per round while warming the filter.
const bloomInitBatch = 1000

type Service struct {
	postRepo   domain.PostRepository
	blogRepo   domain.BlogRepository
	bloomRepo  domain.BloomRepository
	aggregator domain.ReactionAggregator
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, b domain.BlogRepository, bf domain.BloomRepository, agg domain.ReactionAggregator) *Service {
	return &Service{
		postRepo:   p,
		blogRepo:   b,
		bloomRepo:  bf,
		aggregator: agg,
	}
}

func (s *Service) Fetch(ctx context.Context, q domain.Query, viewerID *int64) (domain.Page[domain.Post], error) {
	return s.fetch(ctx, q, nil, viewerID)
}

func (s *Service) FetchByBlog(ctx context.Context, blogID int64, q domain.Query, viewerID *int64) (domain.Page[domain.Post], error) {
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return s.fetch(ctx, q, &blogID, viewerID)
}

func (s *Service) fetch(ctx context.Context, q domain.Query, blogID, viewerID *int64) (domain.Page[domain.Post], error) {
	res, err := s.postRepo.Fetch(ctx, q, blogID)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	if err := listing.Assemble(ctx, s.aggregator, res.Items, viewerID); err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return res, nil
}

func (s *Service) GetByID(ctx context.Context, id int64, viewerID *int64) (domain.Post, error) {
	res, err := Lookup(ctx, s.bloomRepo, s.postRepo, id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := listing.AssembleOne(ctx, s.aggregator, &res, viewerID); err != nil {
		return domain.Post{}, err
	}
	return res, nil
}

// ownedBlog returns the blog if ownerID owns it.
func (s *Service) ownedBlog(ctx context.Context, ownerID, blogID int64) (domain.Blog, error) {
	b, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return domain.Blog{}, err
	}
	if b.OwnerID != ownerID {
		return domain.Blog{}, domain.ErrForbidden
	}
	return b, nil
}

// ownedPost returns the post if it belongs to blogID and ownerID owns the blog.
func (s *Service) ownedPost(ctx context.Context, ownerID, blogID, postID int64) (domain.Post, error) {
	if _, err := s.ownedBlog(ctx, ownerID, blogID); err != nil {
		return domain.Post{}, err
	}
	p, err := Lookup(ctx, s.bloomRepo, s.postRepo, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if p.BlogID != blogID {
		return domain.Post{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *Service) Store(ctx context.Context, ownerID int64, p *domain.Post) error {
	b, err := s.ownedBlog(ctx, ownerID, p.BlogID)
	if err != nil {
		return err
	}
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}
	p.BlogName = b.Name
	p.LikesInfo = domain.LikesInfo{
		MyStatus:    domain.LikeStatusNone,
		NewestLikes: []domain.LikeDetails{},
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		// 过滤器漏掉的 id 会被当成不存在，这里必须记录
		logrus.Errorf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, ownerID int64, p *domain.Post) error {
	if _, err := s.ownedPost(ctx, ownerID, p.BlogID, p.ID); err != nil {
		return err
	}
	return s.postRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, ownerID, blogID, postID int64) error {
	if _, err := s.ownedPost(ctx, ownerID, blogID, postID); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, postID)
}

// InitBloomFilter loads every existing post id into the bloom filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor, total int64
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += int64(len(ids))
		cursor = ids[len(ids)-1]
	}
	logrus.Infof("bloom filter initialized with %d posts", total)
	return nil
}
