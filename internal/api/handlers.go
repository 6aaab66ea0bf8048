package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/gin-gonic/gin"

	"gpumock/internal/inventory"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) system(c *gin.Context) {
	sys, err := inventory.CollectSystem(s.lib)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sys)
}

func (s *Server) devices(c *gin.Context) {
	snap, err := inventory.Collect(s.lib)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": snap.Devices})
}

func (s *Server) device(c *gin.Context) {
	index, ok := s.index(c)
	if !ok {
		return
	}
	dev, err := inventory.CollectDevice(s.lib, index)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dev)
}

func (s *Server) nvlink(c *gin.Context) {
	index, ok := s.index(c)
	if !ok {
		return
	}

	if ret := s.lib.Init(); ret != nvml.SUCCESS {
		s.fail(c, &inventory.Error{Op: "init", Ret: ret})
		return
	}
	defer s.lib.Shutdown()

	h, ret := s.lib.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		s.fail(c, &inventory.Error{Op: "device handle", Ret: ret})
		return
	}
	links, err := inventory.Links(s.lib, h)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"index": index, "links": links})
}

func (s *Server) topology(c *gin.Context) {
	snap, err := inventory.Collect(s.lib)
	if err != nil {
		s.fail(c, err)
		return
	}

	n := len(snap.Devices)
	cells := make([][]string, n)
	for i := range cells {
		cells[i] = make([]string, n)
		for j := range cells[i] {
			cells[i][j] = snap.Topology.Cell(i, j)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"bus_ids": snap.Topology.BusIDs,
		"nvlinks": snap.Topology.Links,
		"levels":  snap.Topology.Levels,
		"matrix":  cells,
	})
}

// index parses the :index path parameter. Out-of-range indices are left
// to the library so its answer decides the status.
func (s *Server) index(c *gin.Context) (int, bool) {
	index, err := strconv.ParseUint(c.Param("index"), 10, 31)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"message": "index must be a non-negative integer",
				"type":    "invalid_index",
			},
		})
		return 0, false
	}
	return int(index), true
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal"

	var invErr *inventory.Error
	if errors.As(err, &invErr) {
		switch invErr.Ret {
		case nvml.ERROR_INVALID_ARGUMENT, nvml.ERROR_NOT_FOUND:
			status, code = http.StatusNotFound, "not_found"
		case nvml.ERROR_UNINITIALIZED:
			status, code = http.StatusServiceUnavailable, "uninitialized"
		case nvml.ERROR_NOT_SUPPORTED:
			status, code = http.StatusNotImplemented, "not_supported"
		}
	}

	s.logger.Warn("api.request.failed", "Library query failed", map[string]interface{}{
		"path":  c.FullPath(),
		"error": err.Error(),
	})
	c.JSON(status, gin.H{
		"error": gin.H{
			"message": err.Error(),
			"type":    code,
		},
	})
}
