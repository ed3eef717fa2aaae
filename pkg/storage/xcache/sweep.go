package xcache

import "time"

// startSweeper 启动后台定时清理 goroutine。
// 清扫与前台操作共用同一把互斥锁，因此不会与进行中的 Set/Get 交错，
// 也不会与显式 Cleanup 并发执行。Destroy 关闭 done 并等待其退出。
func (c *Cache[V]) startSweeper() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-c.done:
				return
			case <-ticker.C:
				if n := c.Cleanup(); n > 0 {
					c.logger.Debug("xcache: sweep removed expired entries",
						"cache", c.name,
						"count", n,
					)
				}
			}
		}
	}()
}
