package handlers

import (
	"net/http"
	"suiviprix/internal/services"
	"suiviprix/internal/utils"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct{}

func NewModerationHandler() *ModerationHandler {
	return &ModerationHandler{}
}

// Vote casts or flips the current user's vote on a submission and returns
// the fresh tallies.
func (h *ModerationHandler) Vote(c *gin.Context) {
	var req struct {
		Polarity string `json:"polarity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidVote)
		return
	}

	submissionID := utils.StringToUint(c.Param("submission_id"))
	submission, err := services.CastVote(currentUser(c), submissionID, req.Polarity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Vote enregistré",
		"votes_positive": submission.VotesPositive,
		"votes_negative": submission.VotesNegative,
	})
}

// Comment adds a comment on a submission.
func (h *ModerationHandler) Comment(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidInput)
		return
	}

	submissionID := utils.StringToUint(c.Param("submission_id"))
	comment, err := services.AddComment(currentUser(c), submissionID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// Comments lists a submission's comments.
func (h *ModerationHandler) Comments(c *gin.Context) {
	submissionID := utils.StringToUint(c.Param("submission_id"))
	comments, err := services.ListComments(submissionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments})
}

// Report files a signalement against a submission.
func (h *ModerationHandler) Report(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidInput)
		return
	}

	submissionID := utils.StringToUint(c.Param("submission_id"))
	if err := services.ReportSubmission(currentUser(c), submissionID, req.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Signalement enregistré"})
}
