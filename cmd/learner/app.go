package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"learner/internal/api"
	"learner/internal/assignment"
	"learner/internal/config"
	"learner/internal/model"
	"learner/internal/notification"
	"learner/internal/player"
	"learner/internal/quiz"
	"learner/internal/session"

	"github.com/rs/zerolog"
)

func newSession(cfg *config.Config) (*session.Session, error) {
	return session.FromToken(cfg.AccessToken, cfg.JWTSecret)
}

// app is the interactive shell around the engines. All engine calls happen
// on this single loop, matching the engines' single-goroutine contract.
type app struct {
	ctx         context.Context
	client      *api.Client
	poller      *notification.Poller
	assignments *assignment.Service
	logger      zerolog.Logger
	in          *bufio.Scanner

	player *player.Player
}

func (a *app) run() {
	fmt.Println("learner - type 'help' for commands")
	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			a.help()
		case "courses":
			a.listCourses()
		case "open":
			a.openCourse(args)
		case "enroll":
			a.enroll()
		case "buy":
			a.buy()
		case "capture":
			a.capture(args)
		case "ls":
			a.outline()
		case "show":
			a.show()
		case "select":
			a.selectLeaf(args)
		case "discussions":
			a.discussions()
		case "say":
			a.postDiscussion(args)
		case "complete":
			a.complete()
		case "quiz":
			a.runQuiz()
		case "review":
			a.reviewAttempt(args)
		case "submit":
			a.submitAssignment(args)
		case "notifications":
			a.notifications()
		case "read":
			a.markRead(args)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func (a *app) help() {
	fmt.Println(`  courses              list enrolled courses
  open <course-id>     open a course
  enroll               enroll (free course)
  buy                  create a payment order
  capture <order-id>   capture an approved order
  ls                   course outline
  select <leaf-id>     activate a leaf
  show                 show the active leaf
  discussions          switch to the discussion tab
  say <message...>     post to the course discussion board
  complete             mark the active content item complete
  quiz                 attempt the active quiz
  review <attempt-id>  review a past attempt of the active quiz
  submit <text...>     submit a text answer for the active assignment
  notifications        show the notification feed
  read <id>            mark a notification read
  quit`)
}

func (a *app) listCourses() {
	courses, err := a.client.ListEnrolledCourses(a.ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range courses {
		fmt.Printf("  [%d] %s - %.0f%% complete\n", c.CourseID, c.Title, c.Progress)
	}
}

func (a *app) openCourse(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: open <course-id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad course id:", args[0])
		return
	}
	p := player.New(id, a.client, a.logger)
	if err := p.Load(a.ctx); err != nil {
		fmt.Println("error:", err)
		return
	}
	a.player = p
	course := p.Course()
	fmt.Printf("%s - %s\n", course.Title, course.Description)
	if !p.Gate().Unlocked() {
		if course.Price > 0 {
			fmt.Printf("locked: buy for $%.2f ('buy'), then 'capture <order-id>'\n", course.Price)
		} else {
			fmt.Println("locked: type 'enroll' to join this free course")
		}
		return
	}
	a.show()
}

func (a *app) enroll() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	if err := a.player.Enroll(a.ctx); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("enrolled")
	a.show()
}

func (a *app) buy() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	order, err := a.player.Gate().BeginPurchase(a.ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("order %s created - approve at %s, then 'capture %s'\n",
		order.OrderID, order.ApprovalURL, order.OrderID)
}

func (a *app) capture(args []string) {
	if a.player == nil || len(args) != 1 {
		fmt.Println("usage: capture <order-id> (after 'open' and 'buy')")
		return
	}
	if err := a.player.CompletePurchase(a.ctx, args[0]); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("purchase complete")
	a.show()
}

func (a *app) outline() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	course := a.player.Course()
	fmt.Printf("%s - %.0f%% complete\n", course.Title, course.Progress)
	for i := range course.Modules {
		m := &course.Modules[i]
		fmt.Printf("  %s\n", m.Title)
		for _, leaf := range player.ModuleLeaves(m) {
			marker := " "
			if leaf.Kind == model.LeafContent && a.player.Tracker().IsComplete(leaf.ID()) {
				marker = "x"
			}
			fmt.Printf("    [%s] (%d) %s: %s\n", marker, leaf.ID(), strings.ToLower(string(leaf.Kind)), leaf.Title())
		}
	}
}

func (a *app) selectLeaf(args []string) {
	if a.player == nil || len(args) != 1 {
		fmt.Println("usage: select <leaf-id> (after 'open')")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad leaf id:", args[0])
		return
	}
	course := a.player.Course()
	for i := range course.Modules {
		m := &course.Modules[i]
		for j := range m.Contents {
			if m.Contents[j].ContentID == id {
				a.player.Navigator().SelectContent(&m.Contents[j])
				a.show()
				return
			}
		}
		if m.Quiz != nil && m.Quiz.QuizID == id {
			a.player.Navigator().SelectQuiz(m.Quiz)
			a.show()
			return
		}
		if m.Assignment != nil && m.Assignment.AssignmentID == id {
			a.player.Navigator().SelectAssignment(m.Assignment)
			a.show()
			return
		}
	}
	fmt.Println("no such leaf")
}

func (a *app) show() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	leaf, err := a.player.ActiveLeaf()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	switch leaf.Kind {
	case model.LeafContent:
		c := leaf.Content
		fmt.Printf("content (%d) %s [%s]\n", c.ContentID, c.Title, c.Type)
		switch c.Type {
		case model.ContentText:
			fmt.Println(c.TextContent)
		case model.ContentVideo:
			fmt.Println("video:", c.URL)
		case model.ContentFile:
			fmt.Println("file:", c.FileURL)
		}
		if a.player.Tracker().IsComplete(c.ContentID) {
			fmt.Println("(completed)")
		}
	case model.LeafQuiz:
		q := leaf.Quiz
		fmt.Printf("quiz (%d) %s - %d questions; type 'quiz' to start\n", q.QuizID, q.Title, len(q.Questions))
	case model.LeafAssignment:
		as := leaf.Assignment
		fmt.Printf("assignment (%d) %s\n%s\n", as.AssignmentID, as.Title, as.Description)
		if as.DueDate != nil {
			overdue := ""
			if as.Overdue(time.Now()) {
				overdue = " (overdue)"
			}
			fmt.Printf("due %s%s\n", as.DueDate.Format(time.RFC822), overdue)
		}
	}
}

func (a *app) discussions() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	a.player.Navigator().SelectDiscussionTab()
	msgs, err := a.client.ListDiscussions(a.ctx, a.player.Course().CourseID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range msgs {
		fmt.Printf("  %s: %s\n", d.Author.Username, d.Message)
	}
}

func (a *app) postDiscussion(args []string) {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	msg := strings.TrimSpace(strings.Join(args, " "))
	if msg == "" {
		fmt.Println("usage: say <message>")
		return
	}
	d, err := a.client.PostDiscussion(a.ctx, a.player.Course().CourseID, msg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("posted (#%d)\n", d.DiscussionID)
}

func (a *app) complete() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	leaf, err := a.player.ActiveLeaf()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if leaf.Kind != model.LeafContent {
		fmt.Println("only content items are completion-tracked")
		return
	}
	if err := a.player.MarkComplete(a.ctx, leaf.ID()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("done - course %.0f%% complete\n", a.player.Percent())
}

func (a *app) runQuiz() {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	leaf, err := a.player.ActiveLeaf()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if leaf.Kind != model.LeafQuiz {
		fmt.Println("the active leaf is not a quiz")
		return
	}
	engine, err := quiz.Start(a.ctx, leaf.ID(), a.client, a.logger)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("answer <n> / next / prev / submit / abort")
	for engine.State() != quiz.StateSubmitted {
		q, ok := engine.Question()
		if !ok {
			fmt.Println("this quiz has no questions")
			return
		}
		fmt.Printf("[%d/%d] %s\n", engine.Cursor()+1, len(engine.Quiz().Questions), q.Text)
		for i, opt := range q.Options {
			sel := " "
			if engine.Answered(q.QuestionID) && engine.Answers()[q.QuestionID] == i {
				sel = "*"
			}
			fmt.Printf("  %s %d) %s\n", sel, i, opt)
		}
		fmt.Print("quiz> ")
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "answer":
			if len(fields) != 2 {
				fmt.Println("usage: answer <option>")
				continue
			}
			opt, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("bad option:", fields[1])
				continue
			}
			if err := engine.SelectAnswer(q.QuestionID, opt); err != nil {
				fmt.Println("error:", err)
			}
		case "next":
			engine.Next()
		case "prev":
			engine.Previous()
		case "submit":
			attempt, err := engine.Submit(a.ctx)
			if err != nil {
				if errors.Is(err, quiz.ErrUnanswered) {
					fmt.Println("not yet:", err)
					continue
				}
				fmt.Println("submission failed (answers kept):", err)
				continue
			}
			a.printReview(engine.Quiz(), attempt)
		case "abort":
			return
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func (a *app) reviewAttempt(args []string) {
	if a.player == nil || len(args) != 1 {
		fmt.Println("usage: review <attempt-id> (after 'open')")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad attempt id:", args[0])
		return
	}
	attempt, err := a.client.GetAttempt(a.ctx, id)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	q, err := a.client.GetQuiz(a.ctx, attempt.QuizID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a.printReview(q, attempt)
}

func (a *app) printReview(q *model.Quiz, attempt *model.QuizAttempt) {
	review := quiz.NewReview(q, attempt)
	verdict := "failed"
	if review.Passed {
		verdict = "passed"
	}
	fmt.Printf("score %.0f%% - %s\n", review.Score, verdict)
	for i, qr := range review.Questions {
		mark := "✗"
		if qr.Correct {
			mark = "✓"
		}
		fmt.Printf("  %s Q%d: %s\n", mark, i+1, qr.Question.Text)
		if !qr.Correct && qr.Answered {
			fmt.Printf("      your answer: %s - correct: %s\n",
				qr.Question.Options[qr.Selected], qr.Question.Options[qr.Question.CorrectAnswer])
		}
	}
}

func (a *app) submitAssignment(args []string) {
	if a.player == nil {
		fmt.Println("open a course first")
		return
	}
	leaf, err := a.player.ActiveLeaf()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if leaf.Kind != model.LeafAssignment {
		fmt.Println("the active leaf is not an assignment")
		return
	}
	sub, err := a.assignments.Submit(a.ctx, model.NewSubmission{
		AssignmentID: leaf.ID(),
		TextAnswer:   strings.Join(args, " "),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("submitted (#%d) - awaiting grading\n", sub.SubmissionID)
	history, err := a.assignments.History(a.ctx, leaf.ID())
	if err == nil && len(history) > 1 {
		fmt.Printf("%d earlier submission(s) on record\n", len(history)-1)
	}
}

func (a *app) notifications() {
	items := a.poller.Notifications()
	fmt.Printf("%d unread\n", a.poller.Unread())
	for _, n := range items {
		read := " "
		if n.IsRead {
			read = "r"
		}
		fmt.Printf("  [%s] (%d) %s\n", read, n.NotificationID, n.Message)
	}
}

func (a *app) markRead(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: read <notification-id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad notification id:", args[0])
		return
	}
	if err := a.poller.MarkRead(a.ctx, id); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("marked read")
}
