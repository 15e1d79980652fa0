package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/haierkeys/note-recall-service/internal/domain"
	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/pkg/code"
	"github.com/haierkeys/note-recall-service/pkg/timex"
	"github.com/haierkeys/note-recall-service/pkg/writequeue"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// List 按过滤条件获取笔记，未给出任何过滤条件时返回空列表
	List(ctx context.Context, uid int64, params *dto.NoteListRequest) ([]*dto.NoteDTO, error)

	// Create 创建笔记
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Update 部分更新笔记，缺失字段保持原值
	Update(ctx context.Context, uid, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 删除笔记
	Delete(ctx context.Context, uid, id int64) error
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo    domain.NoteRepository
	sessionRepo domain.SessionRepository
	writeQueue  *writequeue.Manager
	logger      *zap.Logger
	config      *ServiceConfig
}

// NewNoteService 创建 NoteService 实例
// writeQueue 可以为 nil，此时写操作不做串行化
func NewNoteService(noteRepo domain.NoteRepository, sessionRepo domain.SessionRepository, writeQueue *writequeue.Manager, logger *zap.Logger, config *ServiceConfig) NoteService {
	return &noteService{
		noteRepo:    noteRepo,
		sessionRepo: sessionRepo,
		writeQueue:  writeQueue,
		logger:      logger,
		config:      config,
	}
}

// serialize 将同一用户的写操作排队串行执行
func (s *noteService) serialize(ctx context.Context, uid int64, fn func() error) error {
	if s.writeQueue == nil {
		return fn()
	}
	return s.writeQueue.Execute(ctx, uid, fn)
}

// keybindingScope 获取配置的快捷键唯一性范围，默认会话内唯一
func (s *noteService) keybindingScope() domain.KeybindingScope {
	if s.config != nil && s.config.App.KeybindingScope.Valid() {
		return s.config.App.KeybindingScope
	}
	return domain.KeybindingScopeSession
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	var keybinding *string
	if note.HasKeybinding() {
		k := note.Keybinding
		keybinding = &k
	}
	return &dto.NoteDTO{
		ID:          note.ID,
		SessionID:   note.SessionID,
		SessionName: note.SessionName,
		Title:       note.Title,
		Content:     note.Content,
		Tags:        tags,
		Keybinding:  keybinding,
		OrderKey:    note.OrderKey,
		CreatedAt:   timex.Time(note.CreatedAt),
		UpdatedAt:   timex.Time(note.UpdatedAt),
	}
}

// getOwned 加载笔记并校验归属
func (s *noteService) getOwned(ctx context.Context, uid, id int64) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}
	if !note.OwnedBy(uid) {
		return nil, code.ErrorNoteForbidden
	}
	return note, nil
}

// List 按过滤条件获取笔记
func (s *noteService) List(ctx context.Context, uid int64, params *dto.NoteListRequest) ([]*dto.NoteDTO, error) {
	filter := domain.NoteListFilter{
		SessionID: params.SessionID,
		Tags:      params.Tags,
		Search:    params.Search,
	}

	// 无过滤条件时不返回全量数据
	if filter.IsEmpty() {
		return []*dto.NoteDTO{}, nil
	}

	notes, err := s.noteRepo.List(ctx, uid, filter)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	out := make([]*dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		out = append(out, s.domainToDTO(note))
	}
	return out, nil
}

// Create 创建笔记，所属会话必须存在且属于当前用户
func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	session, err := s.sessionRepo.GetByID(ctx, params.SessionID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if session == nil {
		return nil, code.ErrorSessionNotFound
	}
	if !session.OwnedBy(uid) {
		return nil, code.ErrorSessionForbidden
	}

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	var note *domain.Note
	err = s.serialize(ctx, uid, func() error {
		var werr error
		note, werr = s.noteRepo.Create(ctx, &domain.Note{
			UID:       uid,
			SessionID: params.SessionID,
			Title:     params.Title,
			Content:   params.Content,
			Tags:      tags,
			OrderKey:  params.OrderKey,
		})
		if werr != nil {
			return code.ErrorDBQuery.WithDetails(werr.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("note created",
		zap.Int64("uid", uid),
		zap.Int64("noteId", note.ID),
		zap.Int64("sessionId", note.SessionID))

	return s.domainToDTO(note), nil
}

// Update 部分更新笔记。快捷键按请求体中键是否出现判定：显式 null 清除绑定，
// 非空值转为小写并要求单个字符，再按配置范围做冲突检查。
// 冲突检查与写入在同用户写队列内执行，避免并发绑定同一快捷键同时通过检查。
func (s *noteService) Update(ctx context.Context, uid, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, err := s.getOwned(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.Tags != nil {
		note.Tags = *params.Tags
	}
	if params.OrderKey != nil {
		note.OrderKey = *params.OrderKey
	}

	if params.Keybinding.Set && params.Keybinding.Val != nil {
		key := strings.ToLower(*params.Keybinding.Val)
		if utf8.RuneCountInString(key) != 1 {
			return nil, code.ErrorKeybindingInvalid
		}
	}

	var updated *domain.Note
	err = s.serialize(ctx, uid, func() error {
		if params.Keybinding.Set {
			if params.Keybinding.Val == nil {
				note.Keybinding = ""
			} else {
				key := strings.ToLower(*params.Keybinding.Val)

				conflict, cerr := s.noteRepo.FindKeybindingConflict(ctx, key, uid, note.SessionID, note.ID, s.keybindingScope())
				if cerr != nil {
					return code.ErrorDBQuery.WithDetails(cerr.Error())
				}
				if conflict != nil {
					return code.ErrorKeybindingConflict.WithDetails(conflict.Title)
				}
				note.Keybinding = key
			}
		}

		var werr error
		updated, werr = s.noteRepo.Update(ctx, note)
		if werr != nil {
			return code.ErrorDBQuery.WithDetails(werr.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(updated), nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, uid, id int64) error {
	if _, err := s.getOwned(ctx, uid, id); err != nil {
		return err
	}

	if err := s.serialize(ctx, uid, func() error {
		if werr := s.noteRepo.Delete(ctx, id, uid); werr != nil {
			return code.ErrorDBQuery.WithDetails(werr.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	s.logger.Info("note deleted",
		zap.Int64("uid", uid),
		zap.Int64("noteId", id))
	return nil
}
