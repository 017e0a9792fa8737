package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/bloggers-platform/domain"
)

const (
	KeyPostBloom = "bloom:post:ids"

	bloomHashes = 3
)

// redisBloomRepo is a bloom filter over post ids kept in a redis bitmap.
// Posts are never removed from it: a deleted post only costs one extra
// database lookup.
type redisBloomRepo struct {
	client  *redis.Client
	key     string
	bitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:  client,
		key:     KeyPostBloom,
		bitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id int64) error {
	return r.BulkAdd(ctx, []int64{id})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, r.key, int64(offset), 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, bloomHashes)
	for _, offset := range r.offsets(id) {
		cmds = append(cmds, pipe.GetBit(ctx, r.key, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// offsets derives the bit positions of id with double hashing:
// h1 + i*h2 for i in [0, bloomHashes).
func (r *redisBloomRepo) offsets(id int64) []uint64 {
	data := []byte(strconv.FormatInt(id, 10))

	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	res := make([]uint64, bloomHashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % r.bitSize
	}
	return res
}
