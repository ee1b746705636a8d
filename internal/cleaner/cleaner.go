// Package cleaner 提供并发的单文件清理调度能力。
// 该层负责路径展开、任务分发、读写落盘和结果聚合，不负责文本转换细节。
package cleaner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"cleancomment/internal/engine"
	"cleancomment/internal/languages"
	"cleancomment/internal/model"
)

// Options 表示一次清理运行的可配置行为。
type Options struct {
	// Mode 选择 inline-only 或 remove-all。
	Mode engine.Mode
	// DryRun 只计算是否会改动，不落盘。
	DryRun bool
}

// Service 是清理服务对象。
type Service struct {
	registry *languages.Registry
	workers  int
}

// cleanTask 表示一个待处理文件任务。
// profile 为 nil 表示后缀未注册，worker 会直接产出跳过结果。
type cleanTask struct {
	absolutePath string
	displayPath  string
	profile      *languages.Profile
}

// NewService 创建清理服务。
func NewService(registry *languages.Registry, workers int) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		registry: registry,
		workers:  workers,
	}
}

// CleanPaths 处理一组文件或目录路径。
// 目录会被递归展开；单文件失败只记录为该文件的结果，整批继续。
// 每个文件的输出只依赖自身原始内容，worker 之间无共享可变状态。
func (s *Service) CleanPaths(paths []string, options Options) (model.CleanResult, error) {
	result := model.CleanResult{
		Paths:  append([]string(nil), paths...),
		DryRun: options.DryRun,
		Files:  make([]model.FileOutcome, 0),
	}

	// 先同步核验各顶层路径，失效路径记录为 error 结果后整批继续。
	type rootPath struct {
		absolute string
		isDir    bool
	}
	roots := make([]rootPath, 0, len(paths))

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			result.Files = append(result.Files, model.FileOutcome{
				Path:    path,
				Status:  model.StatusError,
				Message: "empty path argument",
			})
			continue
		}

		absolute, err := filepath.Abs(trimmed)
		if err == nil {
			var info os.FileInfo
			info, err = os.Stat(absolute)
			if err == nil {
				roots = append(roots, rootPath{absolute: absolute, isDir: info.IsDir()})
				continue
			}
		}

		result.Files = append(result.Files, model.FileOutcome{
			Path:    trimmed,
			Status:  model.StatusError,
			Message: fmt.Sprintf("path not found or not accessible: %v", err),
		})
	}

	tasks := make(chan cleanTask, s.workers*4)
	results := make(chan model.FileOutcome, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results, options)
		}()
	}

	go func() {
		defer close(tasks)
		for _, root := range roots {
			if root.isDir {
				if walkErr := s.enqueueDirectoryTasks(root.absolute, tasks); walkErr != nil {
					walkErrChan <- walkErr
					return
				}
				continue
			}
			s.enqueueSingleFileTask(root.absolute, tasks)
		}
		walkErrChan <- nil
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	for outcome := range results {
		result.Files = append(result.Files, outcome)
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return result, walkErr
	}

	s.buildSummaries(&result)
	return result, nil
}

// enqueueDirectoryTasks 遍历目录并把全部普通文件推入任务队列。
// 未注册后缀的文件也会入队，由 worker 统一产出跳过结果，
// 与逐文件状态行的输出约定保持一致。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- cleanTask) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		profile, _ := s.registry.ProfileForFile(path)
		tasks <- cleanTask{
			absolutePath: path,
			displayPath:  filepath.ToSlash(relativePath),
			profile:      profile,
		}
		return nil
	})
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
// 后缀未注册不作为错误，worker 会报告 skipped (unsupported type)。
func (s *Service) enqueueSingleFileTask(filePath string, tasks chan<- cleanTask) {
	profile, _ := s.registry.ProfileForFile(filePath)
	tasks <- cleanTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
		profile:      profile,
	}
}

// runWorker 执行真实的文件读取、转换和条件写回。
func (s *Service) runWorker(tasks <-chan cleanTask, results chan<- model.FileOutcome, options Options) {
	for task := range tasks {
		results <- s.processTask(task, options)
	}
}

// processTask 处理单个文件任务并返回结果。
// 所有故障都收敛为该文件自己的 FileOutcome，绝不向外传播。
func (s *Service) processTask(task cleanTask, options Options) model.FileOutcome {
	if task.profile == nil {
		return model.FileOutcome{
			Path:   task.displayPath,
			Status: model.StatusSkippedUnsupported,
		}
	}

	raw, readErr := os.ReadFile(task.absolutePath)
	if readErr != nil {
		return model.FileOutcome{
			Path:    task.displayPath,
			Status:  model.StatusError,
			Message: readErr.Error(),
		}
	}

	if !utf8.Valid(raw) {
		return model.FileOutcome{
			Path:   task.displayPath,
			Status: model.StatusSkippedDecode,
		}
	}

	content := string(raw)
	cleaned := engine.Transform(content, task.profile, options.Mode)

	// 显式等值比较：内容无变化就绝不触碰原文件。
	if cleaned == content {
		return model.FileOutcome{
			Path:   task.displayPath,
			Status: model.StatusUnchanged,
		}
	}

	if options.DryRun {
		return model.FileOutcome{
			Path:   task.displayPath,
			Status: model.StatusWouldModify,
		}
	}

	if writeErr := os.WriteFile(task.absolutePath, []byte(cleaned), 0o644); writeErr != nil {
		return model.FileOutcome{
			Path:    task.displayPath,
			Status:  model.StatusError,
			Message: writeErr.Error(),
		}
	}

	return model.FileOutcome{
		Path:   task.displayPath,
		Status: model.StatusModified,
	}
}

// buildSummaries 排序文件结果并计算汇总计数。
func (s *Service) buildSummaries(result *model.CleanResult) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	result.Total = model.CleanTotals{}
	for _, outcome := range result.Files {
		result.Total.AddOutcome(outcome)
	}
}
