package persistent

import (
	"context"

	"blog-api/internal/entity"
	"blog-api/internal/model"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	List(ctx context.Context) ([]*entity.Tag, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagModel := ToTagModel(tag)
	if err := r.db.WithContext(ctx).Create(tagModel).Error; err != nil {
		return wrapErr("tag.create", err)
	}
	*tag = *ToTagEntity(tagModel)
	return nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	var tagModel model.TagModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tagModel).Error; err != nil {
		return nil, wrapErr("tag.get_by_id", err)
	}
	return ToTagEntity(&tagModel), nil
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	var tagModel model.TagModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tagModel).Error; err != nil {
		return nil, wrapErr("tag.get_by_slug", err)
	}
	return ToTagEntity(&tagModel), nil
}

func (r *tagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []model.TagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tagModels).Error; err != nil {
		return nil, wrapErr("tag.list", err)
	}

	tags := make([]*entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = ToTagEntity(&tagModels[i])
	}
	return tags, nil
}

func (r *tagRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Tag, error) {
	if len(ids) == 0 {
		return []*entity.Tag{}, nil
	}

	var tagModels []model.TagModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&tagModels).Error; err != nil {
		return nil, wrapErr("tag.list_by_ids", err)
	}

	tags := make([]*entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = ToTagEntity(&tagModels[i])
	}
	return tags, nil
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return wrapErr("category.create", err)
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, wrapErr("category.get_by_id", err)
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&categoryModel).Error; err != nil {
		return nil, wrapErr("category.get_by_slug", err)
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, wrapErr("category.list", err)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *categoryRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, wrapErr("category.list_by_ids", err)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

type PostTagRepository interface {
	Create(ctx context.Context, postID, tagID string) (*entity.PostTag, error)
	ListByPostID(ctx context.Context, postID string) ([]*entity.PostTag, error)
	ListByTagID(ctx context.Context, tagID string) ([]*entity.PostTag, error)
}

type postTagRepository struct {
	db *gorm.DB
}

func NewPostTagRepository(db *gorm.DB) PostTagRepository {
	return &postTagRepository{db: db}
}

func (r *postTagRepository) Create(ctx context.Context, postID, tagID string) (*entity.PostTag, error) {
	postTagModel := &model.PostTagModel{PostID: postID, TagID: tagID}
	if err := r.db.WithContext(ctx).Create(postTagModel).Error; err != nil {
		return nil, wrapErr("post_tag.create", err)
	}
	return ToPostTagEntity(postTagModel), nil
}

func (r *postTagRepository) ListByPostID(ctx context.Context, postID string) ([]*entity.PostTag, error) {
	return r.list(ctx, "post_tag.list_by_post", "post_id = ?", postID)
}

func (r *postTagRepository) ListByTagID(ctx context.Context, tagID string) ([]*entity.PostTag, error) {
	return r.list(ctx, "post_tag.list_by_tag", "tag_id = ?", tagID)
}

func (r *postTagRepository) list(ctx context.Context, op, query string, arg string) ([]*entity.PostTag, error) {
	var postTagModels []model.PostTagModel
	if err := r.db.WithContext(ctx).Where(query, arg).Order("assigned_at ASC").Find(&postTagModels).Error; err != nil {
		return nil, wrapErr(op, err)
	}

	postTags := make([]*entity.PostTag, len(postTagModels))
	for i := range postTagModels {
		postTags[i] = ToPostTagEntity(&postTagModels[i])
	}
	return postTags, nil
}

type PostCategoryRepository interface {
	Create(ctx context.Context, postID, categoryID string) (*entity.PostCategory, error)
	ListByPostID(ctx context.Context, postID string) ([]*entity.PostCategory, error)
	ListByCategoryID(ctx context.Context, categoryID string) ([]*entity.PostCategory, error)
}

type postCategoryRepository struct {
	db *gorm.DB
}

func NewPostCategoryRepository(db *gorm.DB) PostCategoryRepository {
	return &postCategoryRepository{db: db}
}

func (r *postCategoryRepository) Create(ctx context.Context, postID, categoryID string) (*entity.PostCategory, error) {
	postCategoryModel := &model.PostCategoryModel{PostID: postID, CategoryID: categoryID}
	if err := r.db.WithContext(ctx).Create(postCategoryModel).Error; err != nil {
		return nil, wrapErr("post_category.create", err)
	}
	return ToPostCategoryEntity(postCategoryModel), nil
}

func (r *postCategoryRepository) ListByPostID(ctx context.Context, postID string) ([]*entity.PostCategory, error) {
	return r.list(ctx, "post_category.list_by_post", "post_id = ?", postID)
}

func (r *postCategoryRepository) ListByCategoryID(ctx context.Context, categoryID string) ([]*entity.PostCategory, error) {
	return r.list(ctx, "post_category.list_by_category", "category_id = ?", categoryID)
}

func (r *postCategoryRepository) list(ctx context.Context, op, query string, arg string) ([]*entity.PostCategory, error) {
	var postCategoryModels []model.PostCategoryModel
	if err := r.db.WithContext(ctx).Where(query, arg).Order("assigned_at ASC").Find(&postCategoryModels).Error; err != nil {
		return nil, wrapErr(op, err)
	}

	postCategories := make([]*entity.PostCategory, len(postCategoryModels))
	for i := range postCategoryModels {
		postCategories[i] = ToPostCategoryEntity(&postCategoryModels[i])
	}
	return postCategories, nil
}
