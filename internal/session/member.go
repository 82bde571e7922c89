package session

import (
	"context"

	"assigna/internal/service"
)

func (s *Session) memberMenu(ctx context.Context) error {
	for {
		s.menu("Select option to continue", 24, listMenu("Logout")...)
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
			err = s.memberTaskInfo(ctx)
		case choice == 8:
			var yes bool
			yes, err = s.confirm(ctx, confirmLogout)
			if err == nil && yes {
				s.println()
				s.println(MsgLoggedOut)
				return nil
			}
		}
		if err = s.handleInputErr(err); err != nil {
			return err
		}
	}
}

func (s *Session) memberTaskInfo(ctx context.Context) error {
	task, err := s.pickTask(ctx, s.svc.MemberTaskInfo)
	if err != nil || task == nil {
		return err
	}

	s.println()
	s.options("Add note", "Done", "Back")
	choice, err := s.readInt(ctx)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return s.addNote(ctx, *task)
	case 2:
		return s.markDone(ctx, *task)
	}
	return nil
}

func (s *Session) addNote(ctx context.Context, task service.Task) error {
	if task.Complete {
		s.println(MsgCompleted)
		return nil
	}

	s.println()
	s.prompt("Enter your note:")
	note, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	s.println()

	return s.submit(ctx, []string{"Add note", "Back"}, func() service.Status {
		return s.svc.AddTaskNote(ctx, service.Note{TaskID: task.ID, UserNote: note})
	})
}

func (s *Session) markDone(ctx context.Context, task service.Task) error {
	s.println()
	yes, err := s.confirm(ctx, "Are you sure to mark as done? [Yes / No]")
	if err != nil || !yes {
		return err
	}
	s.println()

	return s.submit(ctx, []string{"Done", "Back"}, func() service.Status {
		return s.svc.MarkAsDone(ctx, task.ID)
	})
}
