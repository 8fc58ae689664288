package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/mononotes/mononotes/internal/domain/entity"
	"github.com/mononotes/mononotes/internal/utils"
)

// PostSummaryResponse is the DTO for one post in a listing.
type PostSummaryResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Date        string   `json:"date"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	Tags        []string `json:"tags"`
	Cover       string   `json:"cover,omitempty"`
	ReadingTime string   `json:"reading_time"`
	Views       int64    `json:"views"`
}

// PostDetailResponse is the DTO for one full post.
type PostDetailResponse struct {
	PostSummaryResponse
	Content string           `json:"content"`
	Toc     []entity.TocItem `json:"toc"`
}

// PaginatedPostsResponse is the DTO for the post listing endpoint.
type PaginatedPostsResponse struct {
	Posts      []PostSummaryResponse `json:"posts"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
	TotalCount int                   `json:"total_count"`
}

// AdminPostResponse is the DTO for one row in the admin post list.
type AdminPostResponse struct {
	Slug     string `json:"slug"`
	FileName string `json:"file_name"`
	Title    string `json:"title"`
	Date     string `json:"date"`
}

// ToPostSummaryResponse converts an entity.Post to a PostSummaryResponse DTO.
func ToPostSummaryResponse(post *entity.Post, views int64) PostSummaryResponse {
	return PostSummaryResponse{
		Slug:        post.Slug,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Date:        post.Date,
		UpdatedAt:   post.UpdatedAt,
		Tags:        post.Tags,
		Cover:       post.Cover,
		ReadingTime: utils.EstimateReadingTime(utils.StripMarkdown(post.Content)),
		Views:       views,
	}
}

// ToPostDetailResponse converts an entity.Post to a PostDetailResponse DTO.
func ToPostDetailResponse(post *entity.Post, views int64, toc []entity.TocItem) PostDetailResponse {
	return PostDetailResponse{
		PostSummaryResponse: ToPostSummaryResponse(post, views),
		Content:             post.Content,
		Toc:                 toc,
	}
}

// TagList accepts either a JSON array of strings or a single
// comma-separated string, matching what editors and uploaders submit.
type TagList []string

// UnmarshalJSON implements the lenient tag decoding.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		parts := strings.Split(single, ",")
		tags := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
		*t = tags
		return nil
	}
	return errors.New("tags must be a string or an array of strings")
}

// CommitPostRequest is the payload for the create-or-update endpoint.
type CommitPostRequest struct {
	Slug      string  `json:"slug" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Excerpt   string  `json:"excerpt"`
	Date      string  `json:"date" binding:"required"`
	UpdatedAt string  `json:"updatedAt"`
	Tags      TagList `json:"tags"`
	Cover     string  `json:"cover"`
	Content   string  `json:"content" binding:"required"`
	Message   string  `json:"message"`
	Branch    string  `json:"branch"`
}

// UploadPostRequest is the payload for publishing a raw markdown file.
type UploadPostRequest struct {
	FileName string `json:"file_name" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Message  string `json:"message"`
	Branch   string `json:"branch"`
}

// CommitPostResponse reports a successful publish.
type CommitPostResponse struct {
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// DeletePostResponse reports a successful delete.
type DeletePostResponse struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ViewSlugParam binds the slug path parameter of the view endpoints.
// Counters only exist for published posts, whose slugs are canonical by
// construction, so anything outside the slug charset is rejected up front
// instead of minting junk counter keys.
type ViewSlugParam struct {
	Slug string `uri:"slug" binding:"required,slug"`
}

// ViewCountResponse is the DTO for the view count read endpoint.
type ViewCountResponse struct {
	Slug  string `json:"slug"`
	Views int64  `json:"views"`
}

// ViewIncreaseResponse is the DTO for the view increment endpoint.
type ViewIncreaseResponse struct {
	Slug      string `json:"slug"`
	Views     int64  `json:"views"`
	Increased bool   `json:"increased"`
}
