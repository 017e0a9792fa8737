package domain

import "context"

// BloomRepository answers "may this post exist" before the database is asked.
// Ids are only ever added; a deleted post keeps its bits.
type BloomRepository interface {
	// Add 记录新建文章的 id
	Add(ctx context.Context, id int64) error

	// Exists reports false only for ids that were never added,
	// true means the post has to be loaded to be sure.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 启动时批量写入已有文章
	BulkAdd(ctx context.Context, ids []int64) error
}
