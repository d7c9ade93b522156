package models

import "time"

type Question struct {
	ID               int       `json:"id"`
	User             string    `json:"user"`
	Title            string    `json:"title"`
	Question         string    `json:"question"`
	Answer           string    `json:"answer,omitempty"`
	HasDoctorReplied bool      `json:"hasDoctorReplied"`
	Likes            int       `json:"likes"`
	Dislikes         int       `json:"dislikes"`
	Comments         []Comment `json:"comments"`
	CreatedAt        time.Time `json:"date"`
}

type Comment struct {
	ID         int       `json:"id"`
	QuestionID int       `json:"-"`
	User       string    `json:"user"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"date"`
}
