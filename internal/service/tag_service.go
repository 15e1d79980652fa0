package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/pkg/code"

	"golang.org/x/sync/singleflight"
)

// TagService 定义标签业务服务接口
type TagService interface {
	// List returns the deduplicated, lexicographically sorted union of every
	// tag on the caller's notes. Derived per call, never cached.
	// List 返回用户全部笔记标签去重排序后的集合
	List(ctx context.Context, uid int64) ([]string, error)
}

// tagService 实现 TagService 接口
type tagService struct {
	noteRepo domain.NoteRepository

	// sf 合并同一用户并发的标签推导请求
	sf singleflight.Group
}

// NewTagService 创建 TagService 实例
func NewTagService(noteRepo domain.NoteRepository) TagService {
	return &tagService{noteRepo: noteRepo}
}

// List 获取用户标签集合
func (s *tagService) List(ctx context.Context, uid int64) ([]string, error) {
	v, err, _ := s.sf.Do(strconv.FormatInt(uid, 10), func() (interface{}, error) {
		return s.derive(ctx, uid)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// derive 展平、去重并按字典序排序
func (s *tagService) derive(ctx context.Context, uid int64) ([]string, error) {
	sets, err := s.noteRepo.ListTagSets(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	seen := map[string]struct{}{}
	out := []string{}
	for _, set := range sets {
		for _, tag := range set {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out, nil
}
