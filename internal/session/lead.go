package session

import (
	"context"

	"assigna/internal/output"
	"assigna/internal/service"
)

func (s *Session) leadMenu(ctx context.Context) error {
	for {
		s.menu("Select option to continue", 25, "View members tasks", "Manage tasks", "Logout")
		choice, err := s.readInt(ctx)
		if err != nil {
			if err = s.handleInputErr(err); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 1:
			err = s.leadTasks(ctx)
		case 2:
			err = s.manageTasks(ctx)
		case 3:
			var yes bool
			s.println()
			yes, err = s.confirm(ctx, confirmLogout)
			if err == nil && yes {
				s.println()
				s.println(MsgLoggedOut)
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) leadTasks(ctx context.Context) error {
	for {
		s.menu("Select option to continue", 25, listMenu("Back")...)
		choice, err := s.readInt(ctx)
		if err != nil {
			if err = s.handleInputErr(err); err != nil {
				return err
			}
			continue
		}

		switch {
		case choice >= 1 && choice <= 6:
			res := s.listTasks(ctx, choice)
			if !res.Success {
				s.logger.Info("list tasks failed", "message", res.Message)
				s.tryAgain()
				continue
			}
			err = s.showTasks(ctx, res.Data, true)
		case choice == 7:
			err = s.leadTaskInfo(ctx)
		case choice == 8:
			return nil
		}
		if err = s.handleInputErr(err); err != nil {
			return err
		}
	}
}

func (s *Session) leadTaskInfo(ctx context.Context) error {
	task, err := s.pickTask(ctx, s.svc.LeadTaskInfo)
	if err != nil || task == nil {
		return err
	}

	s.println()
	s.options("Edit", "Delete", "Remind", "Back")
	choice, err := s.readInt(ctx)
	if err != nil {
		return err
	}

	s.println()
	switch choice {
	case 1:
		return s.editTask(ctx, *task)
	case 2:
		return s.deleteTask(ctx, *task)
	case 3:
		return s.remind(ctx, *task)
	}
	return nil
}

// pickTask lists all tasks, asks for an ID and shows its details. A nil task
// with a nil error means there was nothing to show.
func (s *Session) pickTask(ctx context.Context, info func(context.Context, int) service.Result[[]service.Task]) (*service.Task, error) {
	all := s.svc.AllTasks(ctx)
	if !all.Success {
		s.logger.Info("list tasks failed", "message", all.Message)
		return nil, errInvalid
	}
	if err := s.showTasks(ctx, all.Data, false); err != nil || len(all.Data) == 0 {
		return nil, err
	}

	s.options("View information", "Back")
	choice, err := s.readInt(ctx)
	if err != nil || choice != 1 {
		return nil, err
	}

	s.println()
	s.prompt("Enter task id:")
	id, err := s.readInt(ctx)
	if err != nil {
		return nil, err
	}
	s.println()

	res := info(ctx, id)
	if !res.Success {
		s.logger.Info("task info failed", "task", id, "message", res.Message)
		return nil, errInvalid
	}
	if len(res.Data) == 0 {
		s.println(output.NoData)
		return nil, nil
	}
	task := res.Data[0]
	output.FormatTaskInfo(s.out, task)
	return &task, nil
}

func (s *Session) editTask(ctx context.Context, task service.Task) error {
	if task.Complete {
		s.println(MsgCompleted)
		return nil
	}

	s.println("NOTE: KEEP THE SAME VALUE, PRESS [-]")
	s.println()
	edit, err := s.taskForm(ctx, &task)
	if err != nil {
		return err
	}

	return s.submit(ctx, []string{"Save", "Back"}, func() service.Status {
		return s.svc.EditTask(ctx, edit)
	})
}

func (s *Session) deleteTask(ctx context.Context, task service.Task) error {
	return s.submit(ctx, []string{"Delete", "Back"}, func() service.Status {
		return s.svc.DeleteTask(ctx, task.ID)
	})
}

func (s *Session) remind(ctx context.Context, task service.Task) error {
	s.prompt("Enter your message:")
	message, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	s.println()

	return s.submit(ctx, []string{"Send", "Back"}, func() service.Status {
		return s.svc.SendRemind(ctx, service.Reminder{TaskID: task.ID, Message: message})
	})
}

func (s *Session) manageTasks(ctx context.Context) error {
	for {
		s.menu("Select option to continue", 25, "Add a new task", "Back")
		choice, err := s.readInt(ctx)
		if err != nil {
			if err = s.handleInputErr(err); err != nil {
				return err
			}
			continue
		}
		if choice == 2 {
			return nil
		}
		if choice != 1 {
			continue
		}

		s.println()
		form, err := s.taskForm(ctx, nil)
		if err == nil {
			err = s.submit(ctx, []string{"Save task", "Back"}, func() service.Status {
				return s.svc.SaveTask(ctx, service.NewTask{
					Title:      form.Title,
					CategoryID: form.CategoryID,
					Deadline:   form.Deadline,
					Priority:   form.Priority,
					MemberID:   form.MemberID,
					Note:       form.Note,
				})
			})
		}
		if err = s.handleInputErr(err); err != nil {
			return err
		}
	}
}

// submit offers options and runs call when the first one is chosen.
func (s *Session) submit(ctx context.Context, options []string, call func() service.Status) error {
	s.options(options...)
	choice, err := s.readInt(ctx)
	if err != nil || choice != 1 {
		return err
	}

	st := call()
	if !st.Success {
		s.logger.Info("request refused", "message", st.Message)
		return errInvalid
	}
	s.println()
	s.println(MsgSuccessful)
	return nil
}
