// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"assigna/internal/credentials"
	"assigna/internal/service"
)

// Tokens FakeService stores on a successful login.
const (
	FakeAccessToken  = "fake-access"
	FakeRefreshToken = "fake-refresh"
	FakeResetToken   = "fake-reset"
)

// MsgTaskNotFound is returned by mutations on unknown task IDs.
const MsgTaskNotFound = "Task not found"

type fakeUser struct {
	password string
	role     string
}

// FakeService is an in-memory implementation of service.Service for testing.
// Credentials are kept in a real credentials.Store so commands observe the
// same role and token state they would against the API.
type FakeService struct {
	mu         sync.RWMutex
	store      *credentials.Store
	users      map[string]fakeUser
	tasks      []service.Task
	members    []service.Member
	categories []service.Category
	priorities []service.Priority
	nextID     int

	// Failure injection: a non-empty message makes the call report
	// {false, message} without touching state.
	RegisterFailure string
	LoginFailure    string
	ForgotFailure   string
	ResetFailure    string
	ListFailure     string
	InfoFailure     string
	LookupFailure   string
	MutationFailure string

	// Recorded requests.
	Registrations []service.Registration
	Saved         []service.NewTask
	Edits         []service.TaskEdit
	Reminders     []service.Reminder
	Notes         []service.Note
	InfoCalls     []string
}

// NewFakeService creates a FakeService with its own credential store and
// the standard priorities.
func NewFakeService() *FakeService {
	return NewFakeServiceWithStore(credentials.New())
}

// NewFakeServiceWithStore creates a FakeService writing login results into store.
func NewFakeServiceWithStore(store *credentials.Store) *FakeService {
	return &FakeService{
		store:  store,
		users:  make(map[string]fakeUser),
		nextID: 1,
		priorities: []service.Priority{
			{ID: 1, Name: "High"},
			{ID: 2, Name: "Medium"},
			{ID: 3, Name: "Low"},
		},
	}
}

// Store returns the credential store.
func (f *FakeService) Store() *credentials.Store {
	return f.store
}

// AddUser adds an account Login accepts.
func (f *FakeService) AddUser(userName, password, role string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[userName] = fakeUser{password: password, role: role}
}

// LoginAs marks the store as logged in with role.
func (f *FakeService) LoginAs(role string) {
	f.store.SetTokens(FakeAccessToken, FakeRefreshToken, time.Time{})
	f.store.SetRole(role)
}

// AddTask adds a task and returns its ID.
func (f *FakeService) AddTask(t service.Task) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.ID == 0 {
		t.ID = f.nextID
	}
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
	f.tasks = append(f.tasks, t)
	return t.ID
}

// Task returns the stored task with id.
func (f *FakeService) Task(id int) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i := f.indexOf(id)
	if i < 0 {
		return service.Task{}, false
	}
	return f.tasks[i], true
}

// AddMember adds a team member.
func (f *FakeService) AddMember(m service.Member) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members = append(f.members, m)
}

// AddCategory adds a category.
func (f *FakeService) AddCategory(c service.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, c)
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, r service.Registration) service.AuthResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Registrations = append(f.Registrations, r)
	if f.RegisterFailure != "" {
		return service.AuthResult{Message: f.RegisterFailure}
	}
	f.users[r.UserName] = fakeUser{password: r.Password, role: r.Role}
	return service.AuthResult{Success: true, Message: service.MsgOK}
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, userName, password string) service.AuthResult {
	if f.LoginFailure != "" {
		return service.AuthResult{Message: f.LoginFailure}
	}
	f.mu.RLock()
	u, ok := f.users[userName]
	f.mu.RUnlock()
	if !ok || u.password != password {
		return service.AuthResult{Message: "Invalid username or password"}
	}
	f.LoginAs(u.role)
	return service.AuthResult{
		Success:      true,
		Message:      service.MsgOK,
		Token:        FakeAccessToken,
		RefreshToken: FakeRefreshToken,
	}
}

// ForgotPassword implements service.Service.
func (f *FakeService) ForgotPassword(ctx context.Context, email string) service.AuthResult {
	if f.ForgotFailure != "" {
		return service.AuthResult{Message: f.ForgotFailure}
	}
	f.store.SetResetToken(FakeResetToken)
	return service.AuthResult{Success: true, Message: service.MsgOK, ResetToken: FakeResetToken}
}

// ResetPassword implements service.Service.
func (f *FakeService) ResetPassword(ctx context.Context, newPassword, confirmPassword, resetToken string) service.AuthResult {
	if f.ResetFailure != "" {
		return service.AuthResult{Message: f.ResetFailure}
	}
	if newPassword != confirmPassword || resetToken != FakeResetToken {
		return service.AuthResult{Message: "Password reset failed"}
	}
	return service.AuthResult{Success: true, Message: service.MsgOK}
}

// Role implements service.Service.
func (f *FakeService) Role() string {
	return f.store.Role()
}

// ResetToken implements service.Service.
func (f *FakeService) ResetToken() string {
	return f.store.ResetToken()
}

// TokenExpiry implements service.Service.
func (f *FakeService) TokenExpiry() time.Time {
	return f.store.Token().Expiry
}

func (f *FakeService) filter(keep func(service.Task) bool) service.Result[[]service.Task] {
	if f.ListFailure != "" {
		return service.Result[[]service.Task]{Message: f.ListFailure}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := []service.Task{}
	for _, t := range f.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return service.Result[[]service.Task]{Success: true, Message: service.MsgOK, Data: out}
}

// AllTasks implements service.Service.
func (f *FakeService) AllTasks(ctx context.Context) service.Result[[]service.Task] {
	return f.filter(func(service.Task) bool { return true })
}

// Pendings implements service.Service.
func (f *FakeService) Pendings(ctx context.Context) service.Result[[]service.Task] {
	return f.filter(func(t service.Task) bool { return t.Pending })
}

// Completed implements service.Service.
func (f *FakeService) Completed(ctx context.Context) service.Result[[]service.Task] {
	return f.filter(func(t service.Task) bool { return t.Complete })
}

// HighPriority implements service.Service.
func (f *FakeService) HighPriority(ctx context.Context) service.Result[[]service.Task] {
	return f.filter(func(t service.Task) bool { return t.HighPriority })
}

// MediumPriority implements service.Service.
func (f *FakeService) MediumPriority(ctx context.Context) service.Result[[]service.Task] {
	return f.filter(func(t service.Task) bool { return t.MediumPriority })
}

// LowPriority implements service.Service.
func (f *FakeService) LowPriority(ctx context.Context) service.Result[[]service.Task] {
	return f.filter(func(t service.Task) bool { return t.LowPriority })
}

// LeadTaskInfo implements service.Service.
func (f *FakeService) LeadTaskInfo(ctx context.Context, taskID int) service.Result[[]service.Task] {
	return f.info(service.RoleLead, taskID)
}

// MemberTaskInfo implements service.Service.
func (f *FakeService) MemberTaskInfo(ctx context.Context, taskID int) service.Result[[]service.Task] {
	return f.info(service.RoleMember, taskID)
}

func (f *FakeService) info(role string, taskID int) service.Result[[]service.Task] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InfoCalls = append(f.InfoCalls, role)
	if f.InfoFailure != "" {
		return service.Result[[]service.Task]{Message: f.InfoFailure}
	}
	out := []service.Task{}
	if i := f.indexOf(taskID); i >= 0 {
		out = append(out, f.tasks[i])
	}
	return service.Result[[]service.Task]{Success: true, Message: service.MsgOK, Data: out}
}

// TeamMembers implements service.Service.
func (f *FakeService) TeamMembers(ctx context.Context) service.Result[[]service.Member] {
	if f.LookupFailure != "" {
		return service.Result[[]service.Member]{Message: f.LookupFailure}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return service.Result[[]service.Member]{Success: true, Message: service.MsgOK, Data: append([]service.Member{}, f.members...)}
}

// AllCategories implements service.Service.
func (f *FakeService) AllCategories(ctx context.Context) service.Result[[]service.Category] {
	if f.LookupFailure != "" {
		return service.Result[[]service.Category]{Message: f.LookupFailure}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return service.Result[[]service.Category]{Success: true, Message: service.MsgOK, Data: append([]service.Category{}, f.categories...)}
}

// Priorities implements service.Service.
func (f *FakeService) Priorities(ctx context.Context) service.Result[[]service.Priority] {
	if f.LookupFailure != "" {
		return service.Result[[]service.Priority]{Message: f.LookupFailure}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return service.Result[[]service.Priority]{Success: true, Message: service.MsgOK, Data: append([]service.Priority{}, f.priorities...)}
}

// SaveTask implements service.Service.
func (f *FakeService) SaveTask(ctx context.Context, t service.NewTask) service.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Saved = append(f.Saved, t)
	if f.MutationFailure != "" {
		return service.Status{Message: f.MutationFailure}
	}
	task := service.Task{ID: f.nextID, Pending: true}
	f.nextID++
	applyFields(&task, t.Title, t.CategoryID, t.Deadline, t.Priority, t.MemberID, t.Note)
	f.tasks = append(f.tasks, task)
	return service.Status{Success: true, Message: "Task saved"}
}

// EditTask implements service.Service.
func (f *FakeService) EditTask(ctx context.Context, t service.TaskEdit) service.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Edits = append(f.Edits, t)
	if f.MutationFailure != "" {
		return service.Status{Message: f.MutationFailure}
	}
	i := f.indexOf(t.ID)
	if i < 0 {
		return service.Status{Message: MsgTaskNotFound}
	}
	applyFields(&f.tasks[i], t.Title, t.CategoryID, t.Deadline, t.Priority, t.MemberID, t.Note)
	return service.Status{Success: true, Message: "Task updated"}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID int) service.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MutationFailure != "" {
		return service.Status{Message: f.MutationFailure}
	}
	i := f.indexOf(taskID)
	if i < 0 {
		return service.Status{Message: MsgTaskNotFound}
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return service.Status{Success: true, Message: "Task deleted"}
}

// SendRemind implements service.Service.
func (f *FakeService) SendRemind(ctx context.Context, r service.Reminder) service.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reminders = append(f.Reminders, r)
	if f.MutationFailure != "" {
		return service.Status{Message: f.MutationFailure}
	}
	if f.indexOf(r.TaskID) < 0 {
		return service.Status{Message: MsgTaskNotFound}
	}
	return service.Status{Success: true, Message: "Reminder sent"}
}

// AddTaskNote implements service.Service.
func (f *FakeService) AddTaskNote(ctx context.Context, n service.Note) service.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Notes = append(f.Notes, n)
	if f.MutationFailure != "" {
		return service.Status{Message: f.MutationFailure}
	}
	i := f.indexOf(n.TaskID)
	if i < 0 {
		return service.Status{Message: MsgTaskNotFound}
	}
	f.tasks[i].UserNote = n.UserNote
	return service.Status{Success: true, Message: "Note added"}
}

// MarkAsDone implements service.Service.
func (f *FakeService) MarkAsDone(ctx context.Context, taskID int) service.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MutationFailure != "" {
		return service.Status{Message: f.MutationFailure}
	}
	i := f.indexOf(taskID)
	if i < 0 {
		return service.Status{Message: MsgTaskNotFound}
	}
	f.tasks[i].Pending = false
	f.tasks[i].Complete = true
	return service.Status{Success: true, Message: "Task completed"}
}

// indexOf requires f.mu to be held.
func (f *FakeService) indexOf(id int) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func applyFields(t *service.Task, title string, categoryID int, deadline, priority string, memberID int, note string) {
	t.Title = title
	t.CategoryID = categoryID
	t.AssigneeID = memberID
	t.Note = note
	if d, err := time.Parse(service.DateLayout, deadline); err == nil {
		t.Deadline = service.Date{Time: d}
	}
	t.HighPriority = priority == "High"
	t.MediumPriority = priority == "Medium"
	t.LowPriority = priority == "Low"
}

var _ service.Service = (*FakeService)(nil)
