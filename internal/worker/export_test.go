package worker

import "time"

func (w *CleanupExpiredBookingsWorker) SetNow(now func() time.Time) { w.now = now }

func (w *SendRemindersWorker) SetNow(now func() time.Time) { w.now = now }
